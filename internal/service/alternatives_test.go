package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// mockGenerator captures the request and returns a canned result or error.
type mockGenerator struct {
	capturedCode string
	capturedLang string
	returnResult *model.AlternativesResult
	returnErr    error
}

func (m *mockGenerator) Generate(_ context.Context, code, language string) (*model.AlternativesResult, error) {
	m.capturedCode = code
	m.capturedLang = language
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	return m.returnResult, nil
}

func newTestAlternativesService(gen *mockGenerator) *AlternativesService {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	if gen == nil {
		return NewAlternativesService(nil, logger)
	}
	return NewAlternativesService(gen, logger)
}

func TestSuggest_Success(t *testing.T) {
	gen := &mockGenerator{
		returnResult: &model.AlternativesResult{
			Rating:       6,
			Alternatives: []model.Alternative{{Rank: 1, Code: "better"}},
		},
	}
	svc := newTestAlternativesService(gen)

	result, err := svc.Suggest(context.Background(), model.AlternativesRequest{
		Code:     "for i in range(10): pass",
		Language: "python",
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if result.Rating != 6 {
		t.Errorf("Rating = %d, want 6", result.Rating)
	}
	if gen.capturedLang != "python" {
		t.Errorf("language passed to generator = %q", gen.capturedLang)
	}
}

func TestSuggest_EmptyCode(t *testing.T) {
	svc := newTestAlternativesService(&mockGenerator{})

	_, err := svc.Suggest(context.Background(), model.AlternativesRequest{Code: "   "})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSuggest_GeneratorFailureIsUpstream(t *testing.T) {
	gen := &mockGenerator{returnErr: errors.New("model overloaded")}
	svc := newTestAlternativesService(gen)

	_, err := svc.Suggest(context.Background(), model.AlternativesRequest{Code: "x=1"})
	if !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestSuggest_NotConfigured(t *testing.T) {
	svc := newTestAlternativesService(nil)

	_, err := svc.Suggest(context.Background(), model.AlternativesRequest{Code: "x=1"})
	if !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}
