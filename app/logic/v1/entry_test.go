package v1

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/gate"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/types"
)

func newTestEntry(title, content string, createdAt time.Time) types.JournalEntry {
	return types.JournalEntry{
		ID:        "1",
		UserID:    "u1",
		Title:     title,
		Content:   content,
		CreatedAt: createdAt.Unix(),
	}
}

func TestEntryMatchesTitle(t *testing.T) {
	entry := newTestEntry("A sunny Morning", "walked to the park", time.Now())

	assert.True(t, entryMatches(entry, "sunny"))
	assert.True(t, entryMatches(entry, "morning"))
	assert.False(t, entryMatches(entry, "rainy"))
}

func TestEntryMatchesContent(t *testing.T) {
	entry := newTestEntry("Morning", "Walked to the PARK with Ana", time.Now())

	assert.True(t, entryMatches(entry, "park"))
	assert.True(t, entryMatches(entry, "ana"))
	assert.False(t, entryMatches(entry, "beach"))
}

func TestEntryMatchesDisplayDate(t *testing.T) {
	created := time.Date(2025, time.June, 7, 10, 0, 0, 0, time.UTC)
	entry := newTestEntry("Morning", "...", created)

	assert.Equal(t, "June 7, 2025", entry.DisplayDate())
	assert.True(t, entryMatches(entry, "june"))
	assert.True(t, entryMatches(entry, strings.ToLower("June 7")))
	assert.True(t, entryMatches(entry, "2025"))
	assert.False(t, entryMatches(entry, "july"))
}

func TestEntryMatchesEmptyNeedleHandledByCaller(t *testing.T) {
	// ListEntries short-circuits a blank filter before calling entryMatches;
	// the matcher itself treats "" as contained everywhere.
	entry := newTestEntry("t", "c", time.Now())
	assert.True(t, entryMatches(entry, ""))
}

func armTestDelete(userID, token string, action gate.Action) *pendingDelete {
	pd := &pendingDelete{gate: gate.New(), token: token}
	_ = pd.gate.Show("Delete this entry?", "...", "entry-1", action)
	deleteGates.Set(userID, pd)
	return pd
}

func TestConfirmedDeleteTokenIsSpent(t *testing.T) {
	const userID = "user-confirm-replay"
	defer deleteGates.Remove(userID)

	calls := 0
	armTestDelete(userID, "tok-1", func(ctx context.Context, target string) error {
		calls++
		return nil
	})

	l := NewEntryLogic(testUserContext(userID), nil)
	assert.NoError(t, l.ConfirmDelete("tok-1"))
	assert.Equal(t, 1, calls)

	// 同一 token 重放:直接在 token 校验处被拒,动作不会跑第二次
	err := l.ConfirmDelete("tok-1")
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	assert.Equal(t, i18n.ERROR_GATE_NOT_PENDING, ce.Message())
	assert.Equal(t, 1, calls)
}

func TestCancelledDeleteTokenIsSpent(t *testing.T) {
	const userID = "user-cancel-replay"
	defer deleteGates.Remove(userID)

	armTestDelete(userID, "tok-2", func(ctx context.Context, target string) error {
		t.Fatal("delete action must not run after cancel")
		return nil
	})

	l := NewEntryLogic(testUserContext(userID), nil)
	assert.NoError(t, l.CancelDelete("tok-2"))

	err := l.ConfirmDelete("tok-2")
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	assert.Equal(t, i18n.ERROR_GATE_NOT_PENDING, ce.Message())
}

func TestFailedDeleteSpendsToken(t *testing.T) {
	const userID = "user-confirm-failed"
	defer deleteGates.Remove(userID)

	armTestDelete(userID, "tok-3", func(ctx context.Context, target string) error {
		return assert.AnError
	})

	l := NewEntryLogic(testUserContext(userID), nil)

	err := l.ConfirmDelete("tok-3")
	ce, ok := err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, i18n.ERROR_DELETE_FAILED, ce.Message())

	// 弹窗已关闭,token 随之作废
	err = l.ConfirmDelete("tok-3")
	ce, ok = err.(*errors.CustomizedError)
	assert.True(t, ok)
	assert.Equal(t, i18n.ERROR_GATE_NOT_PENDING, ce.Message())
}
