package service

import (
	"context"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/export"
)

type PlanService interface {
	app.GeneratePlanUseCase
	app.AssessReadinessUseCase
}

// LibraryLoader supplies the exercise library for recommendations.
type LibraryLoader interface {
	Load(ctx context.Context, path string) ([]domain.ExerciseRecord, error)
}

type LibraryService interface {
	LibraryLoader
	app.ImportLibraryUseCase
	app.ListLibraryUseCase
}

type ExportService interface {
	Export(ctx context.Context, req app.GenerateRequest, path string) (*app.ExportResult, error)
	// Save writes an already generated plan without regenerating it.
	Save(ctx context.Context, resp *app.GenerateResponse, path string) (*app.ExportResult, error)
	Open(ctx context.Context, path string) (*export.Bundle, error)
}
