// Package model defines the data structures shared by the server, the HTTP
// client, and the client-side stores.
//
// The wire names mirror the persistence layer: `_id` is the canonical,
// server-assigned identifier. Folders additionally carry `id`, a
// client-generated optimistic identifier that the server echoes back
// untouched (see folder.go).
package model

// Snippet is a titled, described, language-tagged block of code text.
type Snippet struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Code        string `json:"code"`
}

// SnippetDraft is a snippet before the server has assigned its identifier.
type SnippetDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Code        string `json:"code"`
}

// SnippetUpdate carries a partial update. Nil fields are left unchanged.
type SnippetUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	Code        *string `json:"code,omitempty"`
}
