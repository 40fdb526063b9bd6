package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moodlingo/moodlingo/pkg/ai"
)

const (
	NAME = "openai"
)

type Driver struct {
	client *openai.Client
	model  string
}

func New(token, proxy, model string) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model == "" {
		model = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func (s *Driver) GenerateInsight(ctx context.Context, content string) (string, error) {
	slog.Debug("GenerateInsight", slog.String("driver", NAME), slog.String("model", s.model))

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: ai.BuildInsightPrompt(content),
			},
		},
		Temperature: 0.7,
		MaxTokens:   120,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", ai.UpstreamError(fmt.Errorf("empty response content"))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *Driver) ClassifyEmotion(ctx context.Context, content string) (ai.EmotionResult, error) {
	slog.Debug("ClassifyEmotion", slog.String("driver", NAME), slog.String("model", s.model))

	var result ai.EmotionResult
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: ai.EMOTION_PROMPT,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		Temperature: 0.1,
		MaxTokens:   200,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return result, classify(err)
	}
	if len(resp.Choices) == 0 {
		return result, ai.UpstreamError(fmt.Errorf("empty response content"))
	}

	if err = json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return result, ai.UpstreamError(fmt.Errorf("failed to unmarshal emotion result, %w", err))
	}
	return result, nil
}

// classify maps client errors onto the shared taxonomy. An APIError means
// the endpoint answered with a non-success status; anything else never got a
// usable answer and counts as transport failure.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return ai.UpstreamError(err)
	}
	return ai.NetworkFailure(err)
}
