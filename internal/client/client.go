// Package client is the HTTP client for the CodeTrove API. One method per
// endpoint; any transport failure or non-2xx response is reported uniformly
// as apperror.ErrNetwork, so callers never branch on status codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// Client talks to a CodeTrove API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// No overall timeout: long-running calls (alternatives) are bounded
		// by the caller's context.
		http: &http.Client{},
	}
}

// do issues one request and decodes the response into out (if non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encoding %s request: %w", op, err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("client: building %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.Network(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperror.Network(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperror.Network(op, fmt.Errorf("decoding response: %w", err))
		}
	}

	return nil
}

// FetchSnippets returns the full snippet collection.
func (c *Client) FetchSnippets(ctx context.Context) ([]model.Snippet, error) {
	var snippets []model.Snippet
	if err := c.do(ctx, "fetching snippets", http.MethodGet, "/api/snippets", nil, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

// CreateSnippet saves a new snippet and returns the server's canonical
// representation (with its assigned id).
func (c *Client) CreateSnippet(ctx context.Context, draft model.SnippetDraft) (*model.Snippet, error) {
	var snippet model.Snippet
	if err := c.do(ctx, "adding snippet", http.MethodPost, "/api/snippets", draft, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

// UpdateSnippet applies a partial update and returns the updated snippet.
func (c *Client) UpdateSnippet(ctx context.Context, id string, upd model.SnippetUpdate) (*model.Snippet, error) {
	var snippet model.Snippet
	path := "/api/snippets/" + url.PathEscape(id)
	if err := c.do(ctx, "updating snippet", http.MethodPut, path, upd, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

// DeleteSnippet removes a snippet.
func (c *Client) DeleteSnippet(ctx context.Context, id string) error {
	path := "/api/snippets/" + url.PathEscape(id)
	return c.do(ctx, "deleting snippet", http.MethodDelete, path, nil, nil)
}

// FetchFolders returns the full folder collection.
func (c *Client) FetchFolders(ctx context.Context) ([]model.Folder, error) {
	var folders []model.Folder
	if err := c.do(ctx, "fetching folders", http.MethodGet, "/api/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder saves a new folder, passing the optimistic id through so the
// confirmed folder can be matched back to its pending entry.
func (c *Client) CreateFolder(ctx context.Context, draft model.FolderDraft) (*model.Folder, error) {
	var folder model.Folder
	if err := c.do(ctx, "adding folder", http.MethodPost, "/api/folders", draft, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder applies a partial update (rename and/or membership set) and
// returns the updated folder. The id must be canonical.
func (c *Client) UpdateFolder(ctx context.Context, id string, upd model.FolderUpdate) (*model.Folder, error) {
	var folder model.Folder
	path := "/api/folders/" + url.PathEscape(id)
	if err := c.do(ctx, "updating folder", http.MethodPut, path, upd, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder.
func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	path := "/api/folders/" + url.PathEscape(id)
	return c.do(ctx, "deleting folder", http.MethodDelete, path, nil, nil)
}

// Alternatives asks the server for AI-generated alternative implementations.
func (c *Client) Alternatives(ctx context.Context, req model.AlternativesRequest) (*model.AlternativesResult, error) {
	var result model.AlternativesResult
	if err := c.do(ctx, "requesting alternatives", http.MethodPost, "/api/alternatives", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WithTimeout returns a copy of the client whose requests are bounded by
// the given timeout regardless of the caller's context.
func (c *Client) WithTimeout(d time.Duration) *Client {
	return &Client{
		baseURL: c.baseURL,
		http:    &http.Client{Timeout: d},
	}
}
