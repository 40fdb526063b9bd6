package v1

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/security"
)

func testUserContext(userID string) context.Context {
	claims := security.NewTokenClaims(userID, true, time.Now().Add(time.Hour).Unix())
	return context.WithValue(context.Background(), TOKEN_CONTEXT_KEY, claims)
}

func TestDraftStateString(t *testing.T) {
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "requesting_insight", StateRequestingInsight.String())
	assert.Equal(t, "saving", StateSaving.String())
}

func TestDraftViewSnapshot(t *testing.T) {
	d := &Draft{state: StateEditing, live: true}
	d.title = "a day"
	d.content = "it rained"
	d.insight = "Rain can be calming too."

	view := d.view()
	assert.Equal(t, "editing", view.State)
	assert.Equal(t, "a day", view.Title)
	assert.Equal(t, "it rained", view.Content)
	assert.Equal(t, "Rain can be calming too.", view.Insight)

	// 快照与草稿解耦，后续编辑不影响已取出的视图
	d.content = "the sun came out"
	assert.Equal(t, "it rained", view.Content)
}

func TestApplyInsight(t *testing.T) {
	d := &Draft{state: StateRequestingInsight, live: true}
	d.content = "some content"

	assert.True(t, d.applyInsight("You showed up for yourself today.", nil))
	assert.Equal(t, "You showed up for yourself today.", d.insight)
	assert.Equal(t, StateEditing, d.state)
}

func TestApplyInsightOverwritesPreviousResult(t *testing.T) {
	d := &Draft{state: StateRequestingInsight, live: true}
	d.insight = "first"

	assert.True(t, d.applyInsight("second", nil))
	assert.Equal(t, "second", d.insight)
}

func TestApplyInsightKeepsContentChangedMeanwhile(t *testing.T) {
	// 快照语义：请求发出后继续编辑，结果仍然落在草稿上
	d := &Draft{state: StateRequestingInsight, live: true}
	d.content = "original"
	d.content = "edited while waiting"

	assert.True(t, d.applyInsight("insight for original", nil))
	assert.Equal(t, "edited while waiting", d.content)
	assert.Equal(t, "insight for original", d.insight)
}

func TestDiscardedDraftDropsLateInsight(t *testing.T) {
	d := &Draft{state: StateRequestingInsight, live: true}
	d.content = "some content"

	// 草稿已保存/丢弃后 late result 到达
	d.mu.Lock()
	d.live = false
	d.mu.Unlock()

	assert.False(t, d.applyInsight("late", nil))
	assert.Empty(t, d.insight)
	assert.Equal(t, StateEditing, d.state)
}

func TestApplyInsightReleasesStateOnError(t *testing.T) {
	d := &Draft{state: StateRequestingInsight, live: true}

	assert.False(t, d.applyInsight("", assert.AnError))
	assert.Empty(t, d.insight)
	assert.Equal(t, StateEditing, d.state)
}

// core 传 nil:校验必须先于任何存储访问,否则下面的用例会直接 panic
func TestSaveDraftRejectsEmptyTitle(t *testing.T) {
	const userID = "user-save-empty-title"
	defer draftRegistry.Remove(userID)

	l := NewDraftLogic(testUserContext(userID), nil)
	l.UpdateDraft("   ", "Felt calm today")

	entry, err := l.SaveDraft()
	assert.Nil(t, entry)
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	assert.Equal(t, i18n.ERROR_EMPTY_TITLE, ce.Message())

	// 拒绝后草稿内容不丢,仍可继续编辑
	view := l.GetDraft()
	assert.Equal(t, "editing", view.State)
	assert.Equal(t, "Felt calm today", view.Content)
}

func TestSaveDraftRejectsEmptyContent(t *testing.T) {
	const userID = "user-save-empty-content"
	defer draftRegistry.Remove(userID)

	l := NewDraftLogic(testUserContext(userID), nil)
	l.UpdateDraft("Morning pages", "")

	entry, err := l.SaveDraft()
	assert.Nil(t, entry)
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	assert.Equal(t, i18n.ERROR_EMPTY_CONTENT, ce.Message())
}

func TestRequestDraftInsightRejectsBlankContent(t *testing.T) {
	const userID = "user-insight-blank"
	defer draftRegistry.Remove(userID)

	l := NewDraftLogic(testUserContext(userID), nil)
	l.UpdateDraft("Morning pages", "   \n\t")

	_, err := l.RequestDraftInsight()
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	assert.Equal(t, i18n.ERROR_EMPTY_CONTENT, ce.Message())

	// 请求被拒,草稿仍停留在编辑态
	view := l.GetDraft()
	assert.Equal(t, "editing", view.State)
}
