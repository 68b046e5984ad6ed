package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
	"codetrove/internal/repository"
)

const MaxFolderNameLength = 100

// FolderService handles business logic for folders and their membership
// sets.
type FolderService struct {
	repo   repository.FolderRepository
	logger *slog.Logger
}

// NewFolderService creates a new FolderService.
func NewFolderService(repo repository.FolderRepository, logger *slog.Logger) *FolderService {
	return &FolderService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and saves a new folder. The draft may carry a
// client-generated optimistic id, which is stored and echoed back so the
// client can reconcile its pending entry.
func (s *FolderService) Create(ctx context.Context, draft model.FolderDraft) (*model.Folder, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "folder name is required")
	}
	if len(name) > MaxFolderNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("folder name must be %d characters or less", MaxFolderNameLength))
	}

	folder := &model.Folder{
		LocalID:    strings.TrimSpace(draft.LocalID),
		Name:       name,
		SnippetIDs: draft.SnippetIDs,
	}
	if folder.SnippetIDs == nil {
		folder.SnippetIDs = []string{}
	}

	if err := s.repo.CreateFolder(ctx, folder); err != nil {
		s.logger.Error("failed to create folder",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	s.logger.Info("folder created",
		slog.String("id", folder.ID),
		slog.String("name", folder.Name),
	)

	return folder, nil
}

// List returns every folder in insertion order.
func (s *FolderService) List(ctx context.Context) ([]model.Folder, error) {
	folders, err := s.repo.ListFolders(ctx)
	if err != nil {
		s.logger.Error("failed to list folders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	return folders, nil
}

// Update applies a partial update to a folder matched by canonical id:
// rename, replace the membership set, or both. The full updated folder is
// returned.
//
// Membership entries are not checked against snippet existence. A folder may
// legitimately hold identifiers of snippets deleted since; readers resolve
// those as absent.
func (s *FolderService) Update(ctx context.Context, id string, upd model.FolderUpdate) (*model.Folder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "folder ID is required")
	}

	folder, err := s.repo.GetFolderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperror.ValidationFailed("name", "folder name is required")
		}
		if len(name) > MaxFolderNameLength {
			return nil, apperror.ValidationFailed("name",
				fmt.Sprintf("folder name must be %d characters or less", MaxFolderNameLength))
		}
		folder.Name = name
	}
	if upd.SnippetIDs != nil {
		folder.SnippetIDs = *upd.SnippetIDs
	}

	if err := s.repo.UpdateFolder(ctx, folder); err != nil {
		s.logger.Error("failed to update folder",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating folder: %w", err)
	}

	s.logger.Info("folder updated",
		slog.String("id", folder.ID),
		slog.String("name", folder.Name),
		slog.Int("snippets", len(folder.SnippetIDs)),
	)

	return folder, nil
}

// Delete removes a folder by its canonical id. Member snippets survive.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "folder ID is required")
	}

	if err := s.repo.DeleteFolder(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", slog.String("id", id))
	return nil
}
