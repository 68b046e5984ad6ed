package model

// Folder is a named grouping that references zero or more snippets by
// identifier. Two identifier spaces coexist:
//
//   - ID is the canonical identifier assigned by the server on creation.
//   - LocalID is the optimistic identifier a client generates so a new
//     folder can render before the create call resolves. The server stores
//     and echoes it untouched.
//
// A folder is matched by either identifier until the canonical one fully
// replaces local state.
//
// SnippetIDs is a membership set, not an ownership edge: entries may refer
// to snippets that have since been deleted, and readers must treat such
// dangling references as absent rather than as errors.
type Folder struct {
	ID         string   `json:"_id"`
	LocalID    string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	SnippetIDs []string `json:"snippetIds"`
}

// Matches reports whether the folder is identified by id in either
// identifier space.
func (f *Folder) Matches(id string) bool {
	if id == "" {
		return false
	}
	return f.ID == id || f.LocalID == id
}

// HasSnippet reports whether id is in the folder's membership set.
func (f *Folder) HasSnippet(id string) bool {
	for _, sid := range f.SnippetIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// FolderDraft is a folder before the server has assigned its canonical
// identifier. LocalID is optional.
type FolderDraft struct {
	LocalID    string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	SnippetIDs []string `json:"snippetIds"`
}

// FolderUpdate carries a partial update. Nil fields are left unchanged.
type FolderUpdate struct {
	Name       *string   `json:"name,omitempty"`
	SnippetIDs *[]string `json:"snippetIds,omitempty"`
}
