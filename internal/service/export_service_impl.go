package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/export"
)

type exportService struct {
	plans    PlanService
	observer UseCaseObserver
}

func NewExportService(plans PlanService, observers ...UseCaseObserver) ExportService {
	return &exportService{plans: plans, observer: useCaseObserverOrNoop(observers)}
}

// Export generates a plan for req and writes it as a bundle to path, or to
// export.DefaultFileName when path is empty.
func (s *exportService) Export(ctx context.Context, req app.GenerateRequest, path string) (result *app.ExportResult, err error) {
	startedAt := time.Now().UTC()
	path = bundlePath(path)
	fields := map[string]any{"path": path}
	defer func() { observe(ctx, s.observer, "export-plan", startedAt, fields, err) }()

	var resp *app.GenerateResponse
	resp, err = s.plans.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err = writeBundle(resp, path)
	if err != nil {
		return nil, err
	}
	fields["bundle_id"] = result.Bundle.ID
	return result, nil
}

// Save writes resp as a bundle, keeping its generation time.
func (s *exportService) Save(ctx context.Context, resp *app.GenerateResponse, path string) (result *app.ExportResult, err error) {
	startedAt := time.Now().UTC()
	path = bundlePath(path)
	fields := map[string]any{"path": path}
	defer func() { observe(ctx, s.observer, "save-plan", startedAt, fields, err) }()

	if resp == nil {
		return nil, errors.New("saving plan: nothing generated")
	}
	result, err = writeBundle(resp, path)
	if err != nil {
		return nil, err
	}
	fields["bundle_id"] = result.Bundle.ID
	return result, nil
}

func bundlePath(path string) string {
	if path == "" {
		return export.DefaultFileName
	}
	return path
}

func writeBundle(resp *app.GenerateResponse, path string) (*app.ExportResult, error) {
	bundle := export.NewBundle(resp.Selection, resp.Persona, resp.Notes, resp.Plan, resp.GeneratedAt)
	if err := export.WriteFile(path, bundle); err != nil {
		return nil, fmt.Errorf("writing bundle: %w", err)
	}
	return &app.ExportResult{Path: path, Bundle: bundle, Warnings: resp.Warnings}, nil
}

func (s *exportService) Open(ctx context.Context, path string) (*export.Bundle, error) {
	b, err := export.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening bundle: %w", err)
	}
	return b, nil
}
