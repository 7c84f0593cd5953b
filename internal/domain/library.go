package domain

import "time"

// LibraryImport records one load of the exercise library into the local
// catalog. Only the most recent import is kept.
type LibraryImport struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	RowCount   int       `json:"rowCount"`
	ImportedAt time.Time `json:"importedAt"`
}
