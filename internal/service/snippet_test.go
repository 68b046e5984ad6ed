package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// mockSnippetRepo is an in-memory SnippetRepository.
type mockSnippetRepo struct {
	snippets map[string]*model.Snippet
	order    []string
	nextID   int
}

func newMockSnippetRepo() *mockSnippetRepo {
	return &mockSnippetRepo{snippets: make(map[string]*model.Snippet)}
}

func (m *mockSnippetRepo) Create(_ context.Context, snippet *model.Snippet) error {
	m.nextID++
	snippet.ID = fmt.Sprintf("mock-%d", m.nextID)
	stored := *snippet
	m.snippets[snippet.ID] = &stored
	m.order = append(m.order, snippet.ID)
	return nil
}

func (m *mockSnippetRepo) GetByID(_ context.Context, id string) (*model.Snippet, error) {
	snippet, ok := m.snippets[id]
	if !ok {
		return nil, apperror.NotFound("snippet", id)
	}
	result := *snippet
	return &result, nil
}

func (m *mockSnippetRepo) List(_ context.Context) ([]model.Snippet, error) {
	result := make([]model.Snippet, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.snippets[id])
	}
	return result, nil
}

func (m *mockSnippetRepo) Update(_ context.Context, snippet *model.Snippet) error {
	if _, ok := m.snippets[snippet.ID]; !ok {
		return apperror.NotFound("snippet", snippet.ID)
	}
	stored := *snippet
	m.snippets[snippet.ID] = &stored
	return nil
}

func (m *mockSnippetRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.snippets[id]; !ok {
		return apperror.NotFound("snippet", id)
	}
	delete(m.snippets, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestSnippetService(t *testing.T) (*SnippetService, *mockSnippetRepo) {
	t.Helper()
	repo := newMockSnippetRepo()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewSnippetService(repo, logger), repo
}

func TestSnippetCreate_Success(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	snippet, err := svc.Create(context.Background(), model.SnippetDraft{
		Title:    "hello world",
		Language: "python",
		Code:     "print('hi')",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if snippet.ID == "" {
		t.Error("expected snippet to have an ID")
	}
	if snippet.Title != "hello world" {
		t.Errorf("Title = %q, want %q", snippet.Title, "hello world")
	}
}

func TestSnippetCreate_TrimsWhitespace(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	snippet, err := svc.Create(context.Background(), model.SnippetDraft{
		Title:       "  spaced out  ",
		Description: "  desc  ",
		Code:        "  code stays  ",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if snippet.Title != "spaced out" {
		t.Errorf("Title = %q, want trimmed", snippet.Title)
	}
	if snippet.Description != "desc" {
		t.Errorf("Description = %q, want trimmed", snippet.Description)
	}
	// Code is free text; leading/trailing whitespace can be significant.
	if snippet.Code != "  code stays  " {
		t.Errorf("Code = %q, want untouched", snippet.Code)
	}
}

func TestSnippetCreate_EmptyTitle(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), model.SnippetDraft{Title: title})
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Create(title=%q) error = %v, want ErrValidation", title, err)
		}
	}
}

func TestSnippetCreate_TitleTooLong(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	_, err := svc.Create(context.Background(), model.SnippetDraft{
		Title: strings.Repeat("a", MaxTitleLength+1),
	})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSnippetCreate_EmptyCodeIsAllowed(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	if _, err := svc.Create(context.Background(), model.SnippetDraft{Title: "just a note"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestSnippetUpdate_PartialFields(t *testing.T) {
	svc, _ := newTestSnippetService(t)
	created, err := svc.Create(context.Background(), model.SnippetDraft{
		Title:    "original",
		Language: "go",
		Code:     "x := 1",
	})
	if err != nil {
		t.Fatalf("setup: Create() error = %v", err)
	}

	title := "renamed"
	updated, err := svc.Update(context.Background(), created.ID, model.SnippetUpdate{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("Title = %q, want %q", updated.Title, "renamed")
	}
	// Fields not in the update are untouched.
	if updated.Language != "go" || updated.Code != "x := 1" {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestSnippetUpdate_CanClearCode(t *testing.T) {
	svc, _ := newTestSnippetService(t)
	created, _ := svc.Create(context.Background(), model.SnippetDraft{Title: "t", Code: "x := 1"})

	empty := ""
	updated, err := svc.Update(context.Background(), created.ID, model.SnippetUpdate{Code: &empty})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Code != "" {
		t.Errorf("Code = %q, want cleared", updated.Code)
	}
}

func TestSnippetUpdate_EmptyTitleRejected(t *testing.T) {
	svc, _ := newTestSnippetService(t)
	created, _ := svc.Create(context.Background(), model.SnippetDraft{Title: "t"})

	empty := "  "
	_, err := svc.Update(context.Background(), created.ID, model.SnippetUpdate{Title: &empty})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSnippetUpdate_NotFound(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	title := "x"
	_, err := svc.Update(context.Background(), "ghost", model.SnippetUpdate{Title: &title})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSnippetDelete(t *testing.T) {
	svc, repo := newTestSnippetService(t)
	created, _ := svc.Create(context.Background(), model.SnippetDraft{Title: "doomed"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.snippets) != 0 {
		t.Error("snippet should be gone")
	}
}

func TestSnippetDelete_NotFound(t *testing.T) {
	svc, _ := newTestSnippetService(t)

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSnippetList_PreservesOrder(t *testing.T) {
	svc, _ := newTestSnippetService(t)
	for _, title := range []string{"one", "two", "three"} {
		if _, err := svc.Create(context.Background(), model.SnippetDraft{Title: title}); err != nil {
			t.Fatalf("setup: Create() error = %v", err)
		}
	}

	snippets, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(snippets) != 3 {
		t.Fatalf("List() returned %d items, want 3", len(snippets))
	}
	for i, want := range []string{"one", "two", "three"} {
		if snippets[i].Title != want {
			t.Errorf("snippets[%d].Title = %q, want %q", i, snippets[i].Title, want)
		}
	}
}
