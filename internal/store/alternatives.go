package store

import (
	"context"

	"codetrove/internal/model"
)

// RequestAlternatives sends the snippet to the language model and stores
// the outcome. The in-flight status doubles as the UI's progress
// indicator; there is no abort path, but a newer request supersedes an
// older one. A superseded completion is discarded, so at most one outcome
// is ever applied.
func (s *Store) RequestAlternatives(ctx context.Context, code, language string) (*model.AlternativesResult, error) {
	s.mu.Lock()
	s.altSeq++
	seq := s.altSeq
	s.state.Alternatives.Status = StatusLoading
	s.state.Alternatives.Error = ""
	s.mu.Unlock()

	result, err := s.api.Alternatives(ctx, model.AlternativesRequest{
		Code:     code,
		Language: language,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.altSeq {
		// A newer request took over; drop this outcome.
		return result, err
	}
	if err != nil {
		s.state.Alternatives.Status = StatusFailed
		s.state.Alternatives.Error = err.Error()
		return nil, err
	}
	s.state.Alternatives.Result = result
	s.state.Alternatives.Status = StatusSucceeded
	return result, nil
}

// FetchTopStories loads the Hacker News front page for the side panel.
func (s *Store) FetchTopStories(ctx context.Context) error {
	s.mu.Lock()
	s.state.News.Status = StatusLoading
	s.state.News.Error = ""
	s.mu.Unlock()

	var (
		stories []model.Story
		err     error
	)
	if s.news != nil {
		stories, err = s.news.TopStories(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.News.Status = StatusFailed
		s.state.News.Error = err.Error()
		return err
	}
	if stories == nil {
		stories = []model.Story{}
	}
	s.state.News.Stories = stories
	s.state.News.Status = StatusSucceeded
	return nil
}
