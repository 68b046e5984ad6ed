package store

import (
	"strings"

	"codetrove/internal/model"
)

// FolderAll is the selection sentinel meaning "no folder filter".
const FolderAll = "all"

// ResolveFolder finds the folder whose optimistic or canonical identifier
// equals id. The first match wins.
func ResolveFolder(folders []model.Folder, id string) (*model.Folder, bool) {
	for i := range folders {
		if folders[i].Matches(id) {
			return &folders[i], true
		}
	}
	return nil, false
}

// DeriveVisibleSnippets computes the ordered list of snippets to display
// from the two collections, the current folder selection, and a free-text
// search term. It is pure and never fails:
//
//  1. selectedFolder empty or FolderAll passes every snippet through. A
//     selection that matches no folder (by either identifier space) yields
//     an empty list, not an error and not the full set.
//  2. With a resolved folder, only snippets in its membership set are kept.
//     Dangling membership entries are simply absent from the result.
//  3. A non-empty search term (trimmed, lower-cased) keeps snippets whose
//     title or code contains it as a substring.
//  4. The snippet collection's own order is preserved throughout.
func DeriveVisibleSnippets(snippets []model.Snippet, folders []model.Folder, selectedFolder, searchTerm string) []model.Snippet {
	visible := filterByFolder(snippets, folders, selectedFolder)

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return visible
	}

	matched := []model.Snippet{}
	for _, s := range visible {
		if strings.Contains(strings.ToLower(s.Title), term) ||
			strings.Contains(strings.ToLower(s.Code), term) {
			matched = append(matched, s)
		}
	}
	return matched
}

func filterByFolder(snippets []model.Snippet, folders []model.Folder, selectedFolder string) []model.Snippet {
	if selectedFolder == "" || selectedFolder == FolderAll {
		out := make([]model.Snippet, len(snippets))
		copy(out, snippets)
		return out
	}

	folder, ok := ResolveFolder(folders, selectedFolder)
	if !ok {
		return []model.Snippet{}
	}

	members := []model.Snippet{}
	for _, s := range snippets {
		if folder.HasSnippet(s.ID) {
			members = append(members, s)
		}
	}
	return members
}
