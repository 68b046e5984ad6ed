// Package repository defines the persistence interfaces. The service layer
// depends on these, never on a concrete database, so storage can be swapped
// and tests can inject in-memory fakes.
package repository

import (
	"context"

	"codetrove/internal/model"
)

// SnippetRepository stores the authoritative set of snippets. List returns
// the full collection in insertion order; filtering happens client-side.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	GetByID(ctx context.Context, id string) (*model.Snippet, error)
	List(ctx context.Context) ([]model.Snippet, error)
	Update(ctx context.Context, snippet *model.Snippet) error
	Delete(ctx context.Context, id string) error
}

// FolderRepository stores folders together with their membership sets.
// Deleting a folder never touches the snippets it references, and a
// folder's membership set may hold identifiers of deleted snippets.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder *model.Folder) error
	GetFolderByID(ctx context.Context, id string) (*model.Folder, error)
	ListFolders(ctx context.Context) ([]model.Folder, error)
	UpdateFolder(ctx context.Context, folder *model.Folder) error
	DeleteFolder(ctx context.Context, id string) error
}
