package v1

import (
	"context"
	"log/slog"
	"time"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/security"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

const SESSION_TTL = time.Hour * 24 * 7

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Anonymous bool   `json:"anonymous"`
	ExpiresAt int64  `json:"expires_at"`
}

// CreateSession 优先使用客户端携带的既有 token 续期，无效或缺失则降级为匿名会话
func (l *AuthLogic) CreateSession(customToken string) (*Session, error) {
	signKey := []byte(l.core.Cfg().Security.SignKey)

	userID := ""
	anonymous := true
	if customToken != "" {
		claims, err := security.VerifyToken(customToken, signKey)
		if err != nil {
			slog.Warn("custom token rejected, falling back to anonymous session",
				slog.String("component", "AuthLogic.CreateSession"),
				slog.Any("error", err))
		} else {
			userID = claims.User
			anonymous = claims.Anonymous
		}
	}
	if userID == "" {
		userID = utils.GenRandomID()
		anonymous = true
	}

	expiresAt := time.Now().Add(SESSION_TTL).Unix()
	token, err := security.GenerateJWT(security.NewTokenClaims(userID, anonymous, expiresAt), signKey)
	if err != nil {
		return nil, errors.New("AuthLogic.CreateSession.GenerateJWT", i18n.ERROR_INTERNAL, err)
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		Anonymous: anonymous,
		ExpiresAt: expiresAt,
	}, nil
}
