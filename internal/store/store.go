// Package store is the client-side state container: the snippet and folder
// collections, the folder selection, the news panel, and the alternatives
// request, together with the pure view derivation in derive.go.
//
// A single mutex serializes every state transition, so no two merges
// interleave. Network calls run outside the lock and their effect on state
// is applied atomically in one locked merge step at completion; a partially
// applied operation is never observable. On a failed operation the last
// successful snapshot of the affected collection is retained.
package store

import (
	"context"
	"log/slog"
	"sync"

	"codetrove/internal/model"
)

// Status is the lifecycle of an asynchronous store operation.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// SnippetsState holds the snippet collection and its fetch lifecycle.
type SnippetsState struct {
	Items  []model.Snippet
	Status Status
	Error  string
}

// FoldersState holds the folder collection and its fetch lifecycle.
type FoldersState struct {
	Items  []model.Folder
	Status Status
	Error  string
}

// AlternativesState holds the one-shot AI alternatives request.
type AlternativesState struct {
	Result *model.AlternativesResult
	Status Status
	Error  string
}

// NewsState holds the top-stories side panel data.
type NewsState struct {
	Stories []model.Story
	Status  Status
	Error   string
}

// State is an immutable snapshot of the whole container.
type State struct {
	Snippets       SnippetsState
	Folders        FoldersState
	SelectedFolder string
	Alternatives   AlternativesState
	News           NewsState
}

// API is the slice of the HTTP client the store depends on.
type API interface {
	FetchSnippets(ctx context.Context) ([]model.Snippet, error)
	CreateSnippet(ctx context.Context, draft model.SnippetDraft) (*model.Snippet, error)
	UpdateSnippet(ctx context.Context, id string, upd model.SnippetUpdate) (*model.Snippet, error)
	DeleteSnippet(ctx context.Context, id string) error
	FetchFolders(ctx context.Context) ([]model.Folder, error)
	CreateFolder(ctx context.Context, draft model.FolderDraft) (*model.Folder, error)
	UpdateFolder(ctx context.Context, id string, upd model.FolderUpdate) (*model.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
	Alternatives(ctx context.Context, req model.AlternativesRequest) (*model.AlternativesResult, error)
}

// NewsSource supplies the stories panel.
type NewsSource interface {
	TopStories(ctx context.Context) ([]model.Story, error)
}

// Store is the state container. Create one with New and share it freely;
// all methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  State
	api    API
	news   NewsSource
	logger *slog.Logger

	// altSeq guards the alternatives request: a completion only applies if
	// no newer request has started, so at most one outcome lands.
	altSeq int
}

// New creates a Store. news may be nil if the stories panel is unused.
func New(api API, news NewsSource, logger *slog.Logger) *Store {
	return &Store{
		state: State{
			Snippets:       SnippetsState{Items: []model.Snippet{}, Status: StatusIdle},
			Folders:        FoldersState{Items: []model.Folder{}, Status: StatusIdle},
			SelectedFolder: FolderAll,
			Alternatives:   AlternativesState{Status: StatusIdle},
			News:           NewsState{Stories: []model.Story{}, Status: StatusIdle},
		},
		api:    api,
		news:   news,
		logger: logger,
	}
}

// Snapshot returns a copy of the current state. Slices are copied so the
// caller can hold the snapshot across later mutations.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

func (s *Store) copyStateLocked() State {
	st := s.state

	st.Snippets.Items = make([]model.Snippet, len(s.state.Snippets.Items))
	copy(st.Snippets.Items, s.state.Snippets.Items)

	st.Folders.Items = make([]model.Folder, len(s.state.Folders.Items))
	for i, f := range s.state.Folders.Items {
		ids := make([]string, len(f.SnippetIDs))
		copy(ids, f.SnippetIDs)
		f.SnippetIDs = ids
		st.Folders.Items[i] = f
	}

	st.News.Stories = make([]model.Story, len(s.state.News.Stories))
	copy(st.News.Stories, s.state.News.Stories)

	return st
}

// VisibleSnippets derives the list to display for the current selection and
// the given search term.
func (s *Store) VisibleSnippets(searchTerm string) []model.Snippet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveVisibleSnippets(s.state.Snippets.Items, s.state.Folders.Items,
		s.state.SelectedFolder, searchTerm)
}

// SelectFolder sets the active folder. The id is not validated: selecting a
// deleted or unknown folder just derives an empty view.
func (s *Store) SelectFolder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedFolder = id
}

// FetchSnippets replaces the snippet collection with the server's. On
// failure the previous items remain visible.
func (s *Store) FetchSnippets(ctx context.Context) error {
	s.mu.Lock()
	s.state.Snippets.Status = StatusLoading
	s.state.Snippets.Error = ""
	s.mu.Unlock()

	items, err := s.api.FetchSnippets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Snippets.Status = StatusFailed
		s.state.Snippets.Error = err.Error()
		return err
	}
	if items == nil {
		items = []model.Snippet{}
	}
	s.state.Snippets.Items = items
	s.state.Snippets.Status = StatusSucceeded
	return nil
}

// AddSnippet saves a draft and appends the server's canonical snippet. No
// dedup check is needed: the id is server-assigned and unique at creation.
func (s *Store) AddSnippet(ctx context.Context, draft model.SnippetDraft) (*model.Snippet, error) {
	s.mu.Lock()
	s.state.Snippets.Status = StatusLoading
	s.state.Snippets.Error = ""
	s.mu.Unlock()

	snippet, err := s.api.CreateSnippet(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Snippets.Status = StatusFailed
		s.state.Snippets.Error = err.Error()
		return nil, err
	}
	s.state.Snippets.Items = append(s.state.Snippets.Items, *snippet)
	s.state.Snippets.Status = StatusSucceeded
	return snippet, nil
}

// UpdateSnippet applies a partial update and merges the server's canonical
// representation back, replacing the matching item in place.
func (s *Store) UpdateSnippet(ctx context.Context, id string, upd model.SnippetUpdate) (*model.Snippet, error) {
	s.mu.Lock()
	s.state.Snippets.Status = StatusLoading
	s.state.Snippets.Error = ""
	s.mu.Unlock()

	snippet, err := s.api.UpdateSnippet(ctx, id, upd)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Snippets.Status = StatusFailed
		s.state.Snippets.Error = err.Error()
		return nil, err
	}
	for i := range s.state.Snippets.Items {
		if s.state.Snippets.Items[i].ID == snippet.ID {
			s.state.Snippets.Items[i] = *snippet
			break
		}
	}
	s.state.Snippets.Status = StatusSucceeded
	return snippet, nil
}

// DeleteSnippet removes a snippet. Folder membership sets are not touched;
// their now-dangling references resolve as absent in the derived view.
func (s *Store) DeleteSnippet(ctx context.Context, id string) error {
	s.mu.Lock()
	s.state.Snippets.Status = StatusLoading
	s.state.Snippets.Error = ""
	s.mu.Unlock()

	err := s.api.DeleteSnippet(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Snippets.Status = StatusFailed
		s.state.Snippets.Error = err.Error()
		return err
	}
	items := s.state.Snippets.Items[:0]
	for _, snip := range s.state.Snippets.Items {
		if snip.ID != id {
			items = append(items, snip)
		}
	}
	s.state.Snippets.Items = items
	s.state.Snippets.Status = StatusSucceeded
	return nil
}
