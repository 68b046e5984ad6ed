package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
	"codetrove/internal/service"
)

// FolderHandler serves the /api/folders endpoints.
type FolderHandler struct {
	svc    *service.FolderService
	logger *slog.Logger
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(svc *service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandleList returns the full folder collection.
//
// GET /api/folders → 200 [Folder]
func (h *FolderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

// HandleCreate saves a new folder. The body may carry a client-generated
// optimistic id, which is stored and echoed back.
//
// POST /api/folders {id?, name, snippetIds} → 201 Folder
func (h *FolderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft model.FolderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.logger.Warn("invalid folder JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	folder, err := h.svc.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

// HandleUpdate renames a folder and/or replaces its membership set.
//
// PUT /api/folders/{id} {name?, snippetIds?} → 200 Folder
func (h *FolderHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var upd model.FolderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.logger.Warn("invalid folder update JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	folder, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

// HandleDelete removes a folder without touching its member snippets.
//
// DELETE /api/folders/{id} → 204
func (h *FolderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
