package app

import "github.com/alexanderramin/praxis/internal/domain"

type ImportResult struct {
	Import        *domain.LibraryImport
	ExerciseCount int
}

// LibraryListing is the local catalog. Import is nil when nothing has been
// imported yet.
type LibraryListing struct {
	Import    *domain.LibraryImport
	Exercises []domain.ExerciseRecord
}

type LibraryErrorCode string

const (
	LibraryErrInvalid  LibraryErrorCode = "INVALID_LIBRARY"
	LibraryErrInternal LibraryErrorCode = "INTERNAL_ERROR"
)

type LibraryError struct {
	Code    LibraryErrorCode
	Message string
	Err     error
}

func (e *LibraryError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *LibraryError) Unwrap() error {
	return e.Err
}
