// Package planner builds phased clinical and performance plans from the
// embedded template catalog, adjusted for the day's readiness band.
package planner

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan catalog: %w", err)
	}
	if errs := ValidateCatalog(&schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan catalog: %w", errors.Join(errs...))
	}
	return &schema, nil
}

var defaultCatalog = sync.OnceValues(func() (*CatalogSchema, error) {
	return ParseCatalog(embeddedCatalog)
})

// DefaultCatalog returns the embedded catalog, parsed once.
func DefaultCatalog() (*CatalogSchema, error) {
	return defaultCatalog()
}
