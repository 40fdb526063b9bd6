package v1

import (
	"context"

	"github.com/samber/lo"

	"github.com/moodlingo/moodlingo/pkg/security"
	"github.com/moodlingo/moodlingo/pkg/types"
)

const (
	TOKEN_CONTEXT_KEY = "__moodlingo.access_token"
	LANGUAGE_KEY      = "__moodlingo.accept_language"
)

// InjectTokenClaim get user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}

func GetContentByClientLanguage[T any](c context.Context, enRes T, cnRes T) T {
	clientLang, _ := InjectLanguage(c)
	return lo.If(clientLang == types.LANGUAGE_EN_KEY, enRes).Else(cnRes)
}
