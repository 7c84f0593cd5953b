package app

import "github.com/alexanderramin/praxis/internal/export"

type ExportResult struct {
	Path     string
	Bundle   *export.Bundle
	Warnings []string
}
