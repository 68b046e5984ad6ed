// Package news fetches the current Hacker News front page for the stories
// side panel.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"codetrove/internal/apperror"
	"codetrove/internal/model"
)

// DefaultBaseURL is the Algolia Hacker News search endpoint.
const DefaultBaseURL = "https://hn.algolia.com/api/v1/search"

// topStoryCount is how many front-page stories the panel shows.
const topStoryCount = 3

// Client fetches top stories.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a news client. baseURL overrides the Algolia endpoint;
// pass "" for the default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// TopStories returns the first few front-page stories.
func (c *Client) TopStories(ctx context.Context) ([]model.Story, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("news: parsing base URL: %w", err)
	}
	q := u.Query()
	q.Set("tags", "front_page")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("news: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.Network("fetching top stories", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Network("fetching top stories",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload struct {
		Hits []model.Story `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.Network("fetching top stories", err)
	}

	stories := payload.Hits
	if len(stories) > topStoryCount {
		stories = stories[:topStoryCount]
	}
	return stories, nil
}
