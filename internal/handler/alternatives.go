package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
	"codetrove/internal/service"
)

// AlternativesHandler serves POST /api/alternatives.
type AlternativesHandler struct {
	svc    *service.AlternativesService
	logger *slog.Logger
}

// NewAlternativesHandler creates a new AlternativesHandler.
func NewAlternativesHandler(svc *service.AlternativesService, logger *slog.Logger) *AlternativesHandler {
	return &AlternativesHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandleSuggest asks the language model for alternative implementations.
// Provider failure maps to a 502 error object, never a crash.
//
// POST /api/alternatives {code, language} → 200 {rating, alternatives}
func (h *AlternativesHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req model.AlternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid alternatives JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.svc.Suggest(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
