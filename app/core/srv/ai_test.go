package srv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlingo/moodlingo/pkg/ai"
)

func TestSetupAIWithoutToken(t *testing.T) {
	a, err := SetupAI(AIConfig{})
	require.NoError(t, err)
	assert.False(t, a.Configured())
	assert.Equal(t, AI_DRIVER_GEMINI, a.Name())

	_, err = a.GenerateInsight(context.Background(), "today was fine")
	require.Error(t, err)
	assert.Equal(t, ai.KindUnconfigured, ai.KindOf(err))

	_, err = a.ClassifyEmotion(context.Background(), "today was fine")
	require.Error(t, err)
	assert.Equal(t, ai.KindUnconfigured, ai.KindOf(err))
}

func TestSetupAIOpenAIWithoutToken(t *testing.T) {
	a, err := SetupAI(AIConfig{Driver: AI_DRIVER_OPENAI})
	require.NoError(t, err)
	assert.False(t, a.Configured())
	assert.Equal(t, AI_DRIVER_OPENAI, a.Name())
}

func TestSetupAIOpenAIWithToken(t *testing.T) {
	a, err := SetupAI(AIConfig{
		Driver: AI_DRIVER_OPENAI,
		OpenAI: AIDriverConfig{Token: "sk-test"},
	})
	require.NoError(t, err)
	assert.True(t, a.Configured())
}

func TestSetupAIUnknownDriver(t *testing.T) {
	_, err := SetupAI(AIConfig{Driver: "bard"})
	assert.Error(t, err)
}
