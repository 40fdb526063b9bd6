package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Localize(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	assert.Equal(t, "AI service is not configured", l.Get("en", ERROR_AI_UNCONFIGURED))
	assert.Equal(t, "请先登录", l.Get("zh-CN", ERROR_UNAUTHORIZED))
}

func Test_LocalizeUnknownID(t *testing.T) {
	l := NewLocalizer("en")
	// unknown ids fall back to the id itself
	assert.Equal(t, "error.never.defined", l.Get("en", "error.never.defined"))
}

func Test_LocalizeUnknownLang(t *testing.T) {
	l := NewLocalizer("en")
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
