package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/ai"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
)

type InsightLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewInsightLogic(ctx context.Context, core *core.Core) *InsightLogic {
	return &InsightLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// GenerateInsight is the synchronous one-shot path: one prompt, one request,
// no retry. Blank content never reaches the model.
func (l *InsightLogic) GenerateInsight(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", errors.New("InsightLogic.GenerateInsight.blank", i18n.ERROR_EMPTY_CONTENT, nil).Code(http.StatusBadRequest)
	}

	timer := l.core.Metrics().InsightTimer(l.core.Srv().AI().Name())
	insight, err := l.core.Srv().AI().GenerateInsight(l.ctx, content)
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().InsightErrorInc(aiErrorKindLabel(err))
		switch ai.KindOf(err) {
		case ai.KindUnconfigured:
			return "", errors.New("InsightLogic.GenerateInsight.unconfigured", i18n.ERROR_AI_UNCONFIGURED, err)
		case ai.KindNetwork:
			return "", errors.New("InsightLogic.GenerateInsight.network", i18n.ERROR_AI_NETWORK, err)
		default:
			return "", errors.New("InsightLogic.GenerateInsight.upstream", i18n.ERROR_AI_UPSTREAM, err)
		}
	}

	return insight, nil
}
