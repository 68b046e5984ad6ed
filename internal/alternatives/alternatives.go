// Package alternatives talks to a language-model provider to obtain
// alternative implementations of a code snippet plus an efficiency rating.
//
// The call is one-shot request/response. Handlers depend on the Generator
// interface, not on the OpenAI client, so tests can inject a fake and the
// provider can be swapped.
package alternatives

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"codetrove/internal/model"
)

// Generator produces alternative implementations for a piece of code.
type Generator interface {
	Generate(ctx context.Context, code, language string) (*model.AlternativesResult, error)
}

const systemPrompt = `You are a senior engineer reviewing a code snippet.
Respond with a single JSON object and nothing else, shaped exactly like:
{"rating": <integer 1-10, efficiency of the given snippet>,
 "alternatives": [{"rank": 1, "code": "<best alternative implementation>"},
                  {"rank": 2, "code": "<next alternative>"}]}
Provide two or three alternatives in the same language as the snippet.`

// OpenAI is the Generator backed by the OpenAI chat-completion API.
type OpenAI struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAI creates a Generator using the given API key.
func NewOpenAI(apiKey string, logger *slog.Logger) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
		logger: logger,
	}
}

// Generate sends the snippet to the model and parses its JSON verdict.
func (o *OpenAI) Generate(ctx context.Context, code, language string) (*model.AlternativesResult, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Language: %s\n\n%s", language, code),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("alternatives: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("alternatives: empty completion response")
	}

	result, err := parseResult(resp.Choices[0].Message.Content)
	if err != nil {
		o.logger.Warn("unparseable model response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("alternatives: %w", err)
	}

	return result, nil
}

// parseResult decodes the model's JSON verdict. Models sometimes wrap the
// object in a markdown code fence; strip it before decoding.
func parseResult(content string) (*model.AlternativesResult, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var result model.AlternativesResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	if result.Rating < 1 || result.Rating > 10 {
		return nil, fmt.Errorf("model rating %d out of range", result.Rating)
	}
	if result.Alternatives == nil {
		result.Alternatives = []model.Alternative{}
	}
	return &result, nil
}
