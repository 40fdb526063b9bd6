package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	MODEL_BASE_LANGUAGE_EN = "en"
	MODEL_BASE_LANGUAGE_CN = "zh"
)

// INSIGHT_PROMPT_TPL is the single templated prompt for entry reflections.
// One prompt instance per call, {content} substituted, nothing else. The
// single-sentence constraint lives in the instruction; the result is trusted
// as returned, never validated for sentence count.
const INSIGHT_PROMPT_TPL = `Following is the content of a human-written diary: "{content}". Read it, then give a simple, concise feedback of it, and respond to it like you're talking directly to the user who wrote the content. Your response MUST be a single sentence and only use that as your output. Ensure the tone is empathetic and encouraging.`

func BuildInsightPrompt(content string) string {
	return strings.ReplaceAll(INSIGHT_PROMPT_TPL, "{content}", content)
}

// EMOTION_PROMPT instructs the model to classify a diary into one dominant
// emotion with an intensity, as strict JSON matching EmotionResult.
const EMOTION_PROMPT = `You are an emotion classifier for diary entries. Read the user's diary text and respond with JSON only: {"emotion": one of "joy", "calm", "stress", "sadness", "anger", "intensity": a number between 0 and 1 describing how strongly the emotion is expressed, "summary": one short sentence summarizing the entry}. Do not output anything except the JSON object.`

type EmotionResult struct {
	Emotion   string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
	Summary   string  `json:"summary"`
}

// InsightAI turns diary content into a one-sentence reflection.
type InsightAI interface {
	GenerateInsight(ctx context.Context, content string) (string, error)
}

// EmotionAI classifies diary content into a dominant emotion snapshot.
type EmotionAI interface {
	ClassifyEmotion(ctx context.Context, content string) (EmotionResult, error)
}

type Driver interface {
	InsightAI
	EmotionAI
	Lang() string
}

// ErrorKind separates the three non-retryable failure classes surfaced to
// the caller: no credential (request never attempted), transport failure,
// and a non-success answer from the model endpoint.
type ErrorKind int

const (
	KindUnconfigured ErrorKind = iota
	KindNetwork
	KindUpstream
)

type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnconfigured:
		return "ai service unconfigured"
	case KindNetwork:
		return fmt.Sprintf("ai network failure: %v", e.err)
	default:
		return fmt.Sprintf("ai upstream error: %v", e.err)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

func Unconfigured() *Error {
	return &Error{Kind: KindUnconfigured}
}

func NetworkFailure(err error) *Error {
	return &Error{Kind: KindNetwork, err: err}
}

func UpstreamError(err error) *Error {
	return &Error{Kind: KindUpstream, err: err}
}

// KindOf extracts the failure class from any error chain, defaulting to
// upstream for errors a driver failed to classify.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUpstream
}
