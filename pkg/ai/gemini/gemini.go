package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/moodlingo/moodlingo/pkg/ai"
)

const (
	NAME = "gemini"

	defaultModel = "gemini-2.5-flash-preview-05-20"
)

type Driver struct {
	client *genai.Client
	model  string
}

func New(token, model string) (*Driver, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = defaultModel
	}

	return &Driver{
		client: client,
		model:  model,
	}, nil
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func (s *Driver) GenerateInsight(ctx context.Context, content string) (string, error) {
	prompt := ai.BuildInsightPrompt(content)
	slog.Debug("GenerateInsight", slog.String("driver", NAME), slog.String("model", s.model))

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classify(err)
	}

	text, err := firstText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *Driver) ClassifyEmotion(ctx context.Context, content string) (ai.EmotionResult, error) {
	slog.Debug("ClassifyEmotion", slog.String("driver", NAME), slog.String("model", s.model))

	var result ai.EmotionResult

	model := s.client.GenerativeModel(s.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(ai.EMOTION_PROMPT))
	// Ask the model to respond with JSON.
	model.ResponseMIMEType = "application/json"
	// Specify the schema.
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"emotion": {
				Type: genai.TypeString,
				Enum: []string{"joy", "calm", "stress", "sadness", "anger"},
			},
			"intensity": {
				Type: genai.TypeNumber,
			},
			"summary": {
				Type: genai.TypeString,
			},
		},
		Required: []string{"emotion", "intensity", "summary"},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(content))
	if err != nil {
		return result, classify(err)
	}

	text, err := firstText(resp)
	if err != nil {
		return result, err
	}

	if err = json.Unmarshal([]byte(text), &result); err != nil {
		return result, ai.UpstreamError(fmt.Errorf("failed to unmarshal emotion result, %w", err))
	}
	return result, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ai.UpstreamError(fmt.Errorf("empty response content"))
	}

	cand := resp.Candidates[0]
	if cand.FinishReason != genai.FinishReasonStop {
		slog.Warn("generation finished without stop", slog.String("driver", NAME), slog.String("reason", cand.FinishReason.String()))
	}

	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", ai.UpstreamError(fmt.Errorf("no text part in response"))
}

func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return ai.UpstreamError(err)
	}
	return ai.NetworkFailure(err)
}
