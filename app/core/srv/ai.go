package srv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moodlingo/moodlingo/pkg/ai"
	"github.com/moodlingo/moodlingo/pkg/ai/gemini"
	"github.com/moodlingo/moodlingo/pkg/ai/openai"
)

type AIConfig struct {
	// Driver 可选 gemini 或 openai，默认 gemini
	Driver string         `toml:"driver"`
	Gemini AIDriverConfig `toml:"gemini"`
	OpenAI AIDriverConfig `toml:"openai"`
}

type AIDriverConfig struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	Model    string `toml:"model"`
}

const (
	AI_DRIVER_GEMINI = "gemini"
	AI_DRIVER_OPENAI = "openai"
)

// AI wraps the configured driver. A nil driver means no credential was
// provided; every call then fails with the unconfigured error instead of
// reaching for the network.
type AI struct {
	driver ai.Driver
	name   string
}

func SetupAI(cfg AIConfig) (*AI, error) {
	switch cfg.Driver {
	case "", AI_DRIVER_GEMINI:
		if cfg.Gemini.Token == "" {
			return &AI{name: AI_DRIVER_GEMINI}, nil
		}
		driver, err := gemini.New(cfg.Gemini.Token, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("srv.SetupAI.gemini.New: %w", err)
		}
		return &AI{driver: driver, name: AI_DRIVER_GEMINI}, nil
	case AI_DRIVER_OPENAI:
		if cfg.OpenAI.Token == "" {
			return &AI{name: AI_DRIVER_OPENAI}, nil
		}
		return &AI{
			driver: openai.New(cfg.OpenAI.Token, cfg.OpenAI.Endpoint, cfg.OpenAI.Model),
			name:   AI_DRIVER_OPENAI,
		}, nil
	default:
		return nil, fmt.Errorf("srv.SetupAI: unknown ai driver %s", cfg.Driver)
	}
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		var err error
		if s.ai, err = SetupAI(cfg); err != nil {
			panic(err)
		}
		if !s.ai.Configured() {
			slog.Warn("ai driver has no token, insight generation disabled", slog.String("driver", s.ai.name))
		}
	}
}

func (a *AI) Configured() bool {
	return a.driver != nil
}

func (a *AI) Name() string {
	return a.name
}

func (a *AI) GenerateInsight(ctx context.Context, content string) (string, error) {
	if a.driver == nil {
		return "", ai.Unconfigured()
	}
	return a.driver.GenerateInsight(ctx, content)
}

func (a *AI) ClassifyEmotion(ctx context.Context, content string) (ai.EmotionResult, error) {
	if a.driver == nil {
		return ai.EmotionResult{}, ai.Unconfigured()
	}
	return a.driver.ClassifyEmotion(ctx, content)
}
