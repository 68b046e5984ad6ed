package service

import (
	"context"
	"log/slog"
	"strings"

	"codetrove/internal/alternatives"
	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// AlternativesService validates requests for AI-generated alternative
// implementations and delegates to the language-model collaborator.
//
// The generator is optional: without an API key the server still runs and
// this service reports the feature as unavailable.
type AlternativesService struct {
	gen    alternatives.Generator
	logger *slog.Logger
}

// NewAlternativesService creates a new AlternativesService. gen may be nil.
func NewAlternativesService(gen alternatives.Generator, logger *slog.Logger) *AlternativesService {
	return &AlternativesService{
		gen:    gen,
		logger: logger,
	}
}

// Suggest asks the language model for alternatives to the given code.
// Collaborator failures surface as upstream errors, never as panics.
func (s *AlternativesService) Suggest(ctx context.Context, req model.AlternativesRequest) (*model.AlternativesResult, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, apperror.ValidationFailed("code", "code is required")
	}
	if len(req.Code) > MaxCodeLength {
		return nil, apperror.ValidationFailed("code", "code is too large")
	}
	if s.gen == nil {
		return nil, apperror.Upstream("alternatives are not configured on this server")
	}

	result, err := s.gen.Generate(ctx, req.Code, req.Language)
	if err != nil {
		s.logger.Error("alternatives generation failed", slog.String("error", err.Error()))
		return nil, apperror.Upstream("the model provider could not produce alternatives")
	}

	s.logger.Info("alternatives generated",
		slog.Int("rating", result.Rating),
		slog.Int("count", len(result.Alternatives)),
	)

	return result, nil
}
