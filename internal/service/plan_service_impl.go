package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/planner"
	"github.com/alexanderramin/praxis/internal/readiness"
	"github.com/alexanderramin/praxis/internal/recommend"
)

type planService struct {
	builder  *planner.Builder
	library  LibraryLoader
	observer UseCaseObserver
}

// NewPlanService wires plan generation. A nil library yields plans with no
// recommendations.
func NewPlanService(builder *planner.Builder, library LibraryLoader, observers ...UseCaseObserver) PlanService {
	return &planService{
		builder:  builder,
		library:  library,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Assess(ctx context.Context, in domain.ReadinessInputs) domain.ReadinessResult {
	startedAt := time.Now().UTC()
	result := readiness.Score(in)
	observe(ctx, s.observer, "assess-readiness", startedAt, map[string]any{
		"score": result.Score,
		"band":  string(result.Band),
	}, nil)
	return result
}

func (s *planService) Generate(ctx context.Context, req app.GenerateRequest) (resp *app.GenerateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"triage_path": req.TriagePath}
	defer func() { observe(ctx, s.observer, "generate-plan", startedAt, fields, err) }()

	var sel domain.Selection
	sel, err = ParseSelection(req)
	if err != nil {
		return nil, err
	}

	score := readiness.Score(req.Readiness)
	fields["score"] = score.Score
	fields["band"] = string(score.Band)

	var plan domain.Plan
	plan, err = s.builder.Dispatch(sel, score)
	if err != nil {
		return nil, fmt.Errorf("building plan: %w", err)
	}

	persona := req.Persona
	if persona == "" {
		persona = domain.DefaultPersona
	}

	resp = &app.GenerateResponse{
		GeneratedAt:     startedAt,
		Selection:       sel,
		Persona:         persona,
		Notes:           req.Notes,
		Readiness:       score,
		Plan:            plan,
		Recommendations: []domain.ExerciseRecord{},
	}

	lib, warning := s.loadLibrary(ctx, req.LibraryPath)
	if warning != "" {
		resp.Warnings = append(resp.Warnings, warning)
	}
	if len(lib) > 0 {
		resp.Recommendations = recommend.Recommend(lib, sel)
		if n := recommend.Matches(lib, sel); n < recommend.MinMatches {
			resp.FallbackUsed = true
			resp.Warnings = append(resp.Warnings, fmt.Sprintf(
				"only %d exercises matched this selection; showing the first %d from the library", n, len(resp.Recommendations)))
		}
	}
	fields["library_size"] = len(lib)
	fields["recommended"] = len(resp.Recommendations)

	return resp, nil
}

// loadLibrary never fails a plan. Problems come back as a warning.
func (s *planService) loadLibrary(ctx context.Context, path string) ([]domain.ExerciseRecord, string) {
	if s.library == nil {
		return nil, "no exercise library configured; no exercises recommended"
	}
	lib, err := s.library.Load(ctx, path)
	if err != nil {
		return nil, fmt.Sprintf("exercise library unavailable (%v); no exercises recommended", err)
	}
	if len(lib) == 0 {
		return nil, "exercise library is empty; import one with `praxis library import <file>`"
	}
	return lib, ""
}
