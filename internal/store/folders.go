package store

import (
	"context"
	"log/slog"

	"github.com/rs/xid"

	"codetrove/internal/model"
)

// FetchFolders replaces the folder collection with the server's. On failure
// the previous items remain visible.
func (s *Store) FetchFolders(ctx context.Context) error {
	s.mu.Lock()
	s.state.Folders.Status = StatusLoading
	s.state.Folders.Error = ""
	s.mu.Unlock()

	items, err := s.api.FetchFolders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Folders.Status = StatusFailed
		s.state.Folders.Error = err.Error()
		return err
	}
	if items == nil {
		items = []model.Folder{}
	}
	s.state.Folders.Items = items
	s.state.Folders.Status = StatusSucceeded
	return nil
}

// AddFolder materializes a pending folder immediately under an optimistic
// identifier, so it renders before the create call resolves, then persists
// it. On confirmation the pending entry is replaced in place by the
// server's canonical folder, matched through the echoed optimistic id,
// rather than left as a near-duplicate next to it. On failure the pending
// entry stays (no destructive rollback) and the status reports the error.
func (s *Store) AddFolder(ctx context.Context, name string) (*model.Folder, error) {
	localID := xid.New().String()
	pending := model.Folder{
		LocalID:    localID,
		Name:       name,
		SnippetIDs: []string{},
	}

	s.mu.Lock()
	s.state.Folders.Items = append(s.state.Folders.Items, pending)
	s.state.Folders.Status = StatusLoading
	s.state.Folders.Error = ""
	s.mu.Unlock()

	confirmed, err := s.api.CreateFolder(ctx, model.FolderDraft{
		LocalID:    localID,
		Name:       name,
		SnippetIDs: []string{},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Folders.Status = StatusFailed
		s.state.Folders.Error = err.Error()
		return nil, err
	}

	replaced := false
	for i := range s.state.Folders.Items {
		if s.state.Folders.Items[i].LocalID == localID && s.state.Folders.Items[i].ID == "" {
			s.state.Folders.Items[i] = *confirmed
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Folders.Items = append(s.state.Folders.Items, *confirmed)
	}
	s.state.Folders.Status = StatusSucceeded

	s.logger.Info("folder confirmed",
		slog.String("localId", localID),
		slog.String("id", confirmed.ID),
	)
	return confirmed, nil
}

// RenameFolder renames a folder. Only canonical ids can be renamed: a
// pending folder that hasn't been confirmed yet has nothing the server
// would match, an accepted limitation of optimistic creation.
func (s *Store) RenameFolder(ctx context.Context, id, name string) error {
	s.mu.Lock()
	s.state.Folders.Status = StatusLoading
	s.state.Folders.Error = ""
	s.mu.Unlock()

	updated, err := s.api.UpdateFolder(ctx, id, model.FolderUpdate{Name: &name})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Folders.Status = StatusFailed
		s.state.Folders.Error = err.Error()
		return err
	}
	for i := range s.state.Folders.Items {
		if s.state.Folders.Items[i].ID == updated.ID {
			s.state.Folders.Items[i].Name = updated.Name
			break
		}
	}
	s.state.Folders.Status = StatusSucceeded
	return nil
}

// DeleteFolder removes a folder, matched by canonical id only. The
// snippets it referenced are untouched.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	s.mu.Lock()
	s.state.Folders.Status = StatusLoading
	s.state.Folders.Error = ""
	s.mu.Unlock()

	err := s.api.DeleteFolder(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Folders.Status = StatusFailed
		s.state.Folders.Error = err.Error()
		return err
	}
	items := s.state.Folders.Items[:0]
	for _, f := range s.state.Folders.Items {
		if f.ID != id {
			items = append(items, f)
		}
	}
	s.state.Folders.Items = items
	s.state.Folders.Status = StatusSucceeded
	return nil
}

// ToggleSnippetInFolder flips the snippet's presence in the folder's
// membership set (add if absent, remove if present). The local toggle
// applies immediately so the view updates at once; the resulting set is
// then persisted so the change survives a reload.
//
// The persistence write sends the membership set as it stood at toggle
// time. Two overlapping toggles on the same folder are therefore
// last-write-wins: the second write can overwrite the first's set.
//
// The folder may be addressed by either identifier. If it only has an
// optimistic id (creation not yet confirmed), the toggle stays local: the
// server has no id to match, an accepted limitation of optimistic creation.
func (s *Store) ToggleSnippetInFolder(ctx context.Context, folderID, snippetID string) error {
	s.mu.Lock()
	var (
		canonicalID string
		newSet      []string
		found       bool
	)
	for i := range s.state.Folders.Items {
		f := &s.state.Folders.Items[i]
		if !f.Matches(folderID) {
			continue
		}
		found = true
		if f.HasSnippet(snippetID) {
			kept := []string{}
			for _, sid := range f.SnippetIDs {
				if sid != snippetID {
					kept = append(kept, sid)
				}
			}
			f.SnippetIDs = kept
		} else {
			f.SnippetIDs = append(f.SnippetIDs, snippetID)
		}
		canonicalID = f.ID
		newSet = make([]string, len(f.SnippetIDs))
		copy(newSet, f.SnippetIDs)
		break
	}
	s.mu.Unlock()

	if !found || canonicalID == "" {
		return nil
	}

	updated, err := s.api.UpdateFolder(ctx, canonicalID, model.FolderUpdate{SnippetIDs: &newSet})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// The local toggle stays visible; only persistence failed.
		s.state.Folders.Status = StatusFailed
		s.state.Folders.Error = err.Error()
		return err
	}
	for i := range s.state.Folders.Items {
		if s.state.Folders.Items[i].ID == updated.ID {
			s.state.Folders.Items[i].SnippetIDs = updated.SnippetIDs
			break
		}
	}
	s.state.Folders.Status = StatusSucceeded
	return nil
}
