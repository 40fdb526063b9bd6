package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInsightPrompt(t *testing.T) {
	prompt := BuildInsightPrompt("I failed my exam")

	assert.Contains(t, prompt, `diary: "I failed my exam"`)
	assert.Contains(t, prompt, "MUST be a single sentence")
	assert.False(t, strings.Contains(prompt, "{content}"))
}

func Test_KindOf(t *testing.T) {
	assert.Equal(t, KindUnconfigured, KindOf(Unconfigured()))
	assert.Equal(t, KindNetwork, KindOf(NetworkFailure(fmt.Errorf("dial tcp: timeout"))))
	assert.Equal(t, KindUpstream, KindOf(UpstreamError(fmt.Errorf("429"))))

	// wrapped errors keep their kind
	wrapped := fmt.Errorf("request insight: %w", NetworkFailure(fmt.Errorf("eof")))
	assert.Equal(t, KindNetwork, KindOf(wrapped))

	// unclassified errors count as upstream
	assert.Equal(t, KindUpstream, KindOf(fmt.Errorf("weird")))
}
