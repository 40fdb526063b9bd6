package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/gate"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/types"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

type EntryLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *EntryLogic) GetEntry(id string) (*types.JournalEntry, error) {
	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, l.GetUserInfo().User, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("EntryLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("EntryLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_STORE_UNAVAILABLE, err)
	}
	return entry, nil
}

// ListEntries returns the user's entries newest first plus the unfiltered
// total, optionally narrowed by a case-insensitive substring filter over
// title, display date and content. The filter subsets the stored order, it
// never reorders.
func (l *EntryLogic) ListEntries(filter string) ([]types.JournalEntry, int64, error) {
	userID := l.GetUserInfo().User
	list, err := l.core.Store().JournalEntryStore().List(l.ctx, userID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("EntryLogic.ListEntries.JournalEntryStore.List", i18n.ERROR_FETCH_FAILED, err)
	}

	total, err := l.core.Store().JournalEntryStore().Total(l.ctx, userID)
	if err != nil {
		return nil, 0, errors.New("EntryLogic.ListEntries.JournalEntryStore.Total", i18n.ERROR_FETCH_FAILED, err)
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return list, total, nil
	}

	matched := lo.Filter(list, func(item types.JournalEntry, _ int) bool {
		return entryMatches(item, filter)
	})
	return matched, total, nil
}

// entryMatches expects needle already lower-cased.
func entryMatches(entry types.JournalEntry, needle string) bool {
	if strings.Contains(strings.ToLower(entry.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.DisplayDate()), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Content), needle)
}

// pendingDelete binds an armed gate to the token handed to the client; the
// token must come back on confirm/cancel so a stale dialog can't resolve a
// newer one.
type pendingDelete struct {
	token string
	gate  *gate.Gate
}

var deleteGates = cmap.New[*pendingDelete]()

type DeletePrompt struct {
	Token   string `json:"token"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// RequestDelete arms the user's confirmation gate for one entry and returns
// the prompt to render. Requesting a delete while another is pending simply
// re-arms the gate with the new target.
func (l *EntryLogic) RequestDelete(id string) (*DeletePrompt, error) {
	userID := l.GetUserInfo().User

	entry, err := l.GetEntry(id)
	if err != nil {
		return nil, errors.Trace("EntryLogic.RequestDelete", err)
	}

	pd, _ := deleteGates.Get(userID)
	if pd == nil {
		pd = &pendingDelete{gate: gate.New()}
		if !deleteGates.SetIfAbsent(userID, pd) {
			pd, _ = deleteGates.Get(userID)
		}
	}

	title := GetContentByClientLanguage(l.ctx, "Delete this entry?", "删除这篇日记？")
	message := GetContentByClientLanguage(l.ctx,
		`This will permanently delete "`+entry.Title+`". This action cannot be undone.`,
		`“`+entry.Title+`”将被永久删除，且无法恢复。`)

	err = pd.gate.Show(title, message, id, func(ctx context.Context, target string) error {
		return l.core.Store().JournalEntryStore().Delete(ctx, userID, target)
	})
	if err != nil {
		return nil, gateError("EntryLogic.RequestDelete.Show", err)
	}
	pd.token = utils.GenRandomID()

	return &DeletePrompt{
		Token:   pd.token,
		Title:   title,
		Message: message,
	}, nil
}

// ConfirmDelete resolves the pending gate and performs the delete.
func (l *EntryLogic) ConfirmDelete(token string) error {
	pd, err := l.pending(token)
	if err != nil {
		return err
	}

	if err := pd.gate.Confirm(l.ctx); err != nil {
		if err == gate.ErrNotPending || err == gate.ErrBusy {
			return gateError("EntryLogic.ConfirmDelete.Confirm", err)
		}
		// 动作失败时弹窗同样已关闭，token 必须作废
		pd.token = ""
		return errors.New("EntryLogic.ConfirmDelete.delete", i18n.ERROR_DELETE_FAILED, err)
	}
	pd.token = ""
	return nil
}

// CancelDelete dismisses the pending gate, no side effect.
func (l *EntryLogic) CancelDelete(token string) error {
	pd, err := l.pending(token)
	if err != nil {
		return err
	}

	if err := pd.gate.Cancel(); err != nil {
		return gateError("EntryLogic.CancelDelete.Cancel", err)
	}
	pd.token = ""
	return nil
}

func (l *EntryLogic) pending(token string) (*pendingDelete, error) {
	pd, ok := deleteGates.Get(l.GetUserInfo().User)
	if !ok || pd.token == "" || pd.token != token {
		return nil, errors.New("EntryLogic.pending.token", i18n.ERROR_GATE_NOT_PENDING, nil).Code(http.StatusBadRequest)
	}
	return pd, nil
}

func gateError(trace string, err error) error {
	switch err {
	case gate.ErrBusy:
		return errors.New(trace, i18n.ERROR_GATE_BUSY, err).Code(http.StatusConflict)
	default:
		return errors.New(trace, i18n.ERROR_GATE_NOT_PENDING, err).Code(http.StatusBadRequest)
	}
}
