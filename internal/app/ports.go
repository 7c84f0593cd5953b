package app

import (
	"context"

	"github.com/alexanderramin/praxis/internal/domain"
)

type GeneratePlanUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type AssessReadinessUseCase interface {
	Assess(ctx context.Context, in domain.ReadinessInputs) domain.ReadinessResult
}

type ImportLibraryUseCase interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
}

type ListLibraryUseCase interface {
	List(ctx context.Context) (*LibraryListing, error)
}
