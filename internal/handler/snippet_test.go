package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codetrove/internal/handler"
	"codetrove/internal/model"
	sqliteRepo "codetrove/internal/repository/sqlite"
	"codetrove/internal/service"
)

// newTestRouter wires real services over an in-memory database, which keeps
// handler tests close to production behavior without any network.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := sqliteRepo.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	snippetHandler := handler.NewSnippetHandler(service.NewSnippetService(db, logger), logger)
	folderHandler := handler.NewFolderHandler(service.NewFolderService(db, logger), logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/snippets", snippetHandler.HandleList)
		r.Get("/snippets/{id}", snippetHandler.HandleGetByID)
		r.Post("/snippets", snippetHandler.HandleCreate)
		r.Put("/snippets/{id}", snippetHandler.HandleUpdate)
		r.Delete("/snippets/{id}", snippetHandler.HandleDelete)
		r.Get("/folders", folderHandler.HandleList)
		r.Post("/folders", folderHandler.HandleCreate)
		r.Put("/folders/{id}", folderHandler.HandleUpdate)
		r.Delete("/folders/{id}", folderHandler.HandleDelete)
	})
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSnippetLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Create
	rr := doJSON(t, r, http.MethodPost, "/api/snippets",
		`{"title":"Hello","description":"greets","language":"js","code":"console.log(1)"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created model.Snippet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Hello", created.Title)

	// List
	rr = doJSON(t, r, http.MethodGet, "/api/snippets", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []model.Snippet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Partial update: only the title changes.
	rr = doJSON(t, r, http.MethodPut, "/api/snippets/"+created.ID, `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated model.Snippet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "console.log(1)", updated.Code)

	// Delete
	rr = doJSON(t, r, http.MethodDelete, "/api/snippets/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/snippets/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSnippetCreate_MissingTitle(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/snippets", `{"code":"x=1"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
	assert.Equal(t, "validation_error", errResp.Error)
}

func TestSnippetCreate_InvalidJSON(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/snippets", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSnippetUpdate_UnknownID(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPut, "/api/snippets/ghost", `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
	assert.Equal(t, "not_found", errResp.Error)
}

func TestFolderLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Create, passing an optimistic client id through.
	rr := doJSON(t, r, http.MethodPost, "/api/folders",
		`{"id":"local-42","name":"scripts","snippetIds":[]}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created model.Folder
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "local-42", created.LocalID)
	assert.Equal(t, []string{}, created.SnippetIDs)

	// Replace the membership set.
	rr = doJSON(t, r, http.MethodPut, "/api/folders/"+created.ID, `{"snippetIds":["a","b"]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated model.Folder
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, []string{"a", "b"}, updated.SnippetIDs)
	assert.Equal(t, "scripts", updated.Name)

	// Delete
	rr = doJSON(t, r, http.MethodDelete, "/api/folders/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/folders", "")
	var folders []model.Folder
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&folders))
	assert.Empty(t, folders)
}

func TestFolderCreate_MissingName(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/folders", `{"snippetIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFolderWireShape(t *testing.T) {
	// The canonical id serializes as `_id` and the optimistic id as `id`,
	// matching what the stores and derivation depend on.
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/folders", `{"id":"local-1","name":"js","snippetIds":[]}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.Contains(t, raw, "_id")
	assert.Equal(t, "local-1", raw["id"])
	assert.Contains(t, raw, "snippetIds")
}
