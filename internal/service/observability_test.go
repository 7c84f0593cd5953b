package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-plan",
		Duration: 1500 * time.Microsecond,
		Success:  true,
		Fields:   map[string]any{"triage_path": "A", "band": "Yellow"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=generate-plan")
	assert.Contains(t, out, "duration_ms=1")
	assert.Less(t, strings.Index(out, "band=Yellow"), strings.Index(out, "triage_path=A"))
}

func TestLogUseCaseObserver_Error(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "import-library",
		Err:  errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, `error="disk full"`)
}

func TestLogUseCaseObserver_InputErrorsAreWarnings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown identifier", &domain.InvalidIdentifierError{Kind: domain.KindTrack, Value: "sprint"}, "level=WARN"},
		{"invalid library", fmt.Errorf("wrapped: %w", &app.LibraryError{Code: app.LibraryErrInvalid, Message: "no rows"}), "level=WARN"},
		{"internal library", &app.LibraryError{Code: app.LibraryErrInternal, Message: "db"}, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogUseCaseObserver(&buf, slog.LevelInfo).ObserveUseCase(context.Background(), UseCaseEvent{
				Name: "generate-plan",
				Err:  tt.err,
			})
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLogUseCaseObserver_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelWarn)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "assess-readiness", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "assess-readiness", Err: errors.New("x")})
	assert.NotEmpty(t, buf.String())
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	obs := NewLogUseCaseObserver(nil, slog.LevelInfo)
	_, ok := obs.(NoopUseCaseObserver)
	require.True(t, ok)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	_, ok := useCaseObserverOrNoop(nil).(NoopUseCaseObserver)
	assert.True(t, ok)

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
