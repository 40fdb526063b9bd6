package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/ai"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/safe"
	"github.com/moodlingo/moodlingo/pkg/types"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

type DraftState int

const (
	StateEditing DraftState = iota
	StateRequestingInsight
	StateSaving
)

func (s DraftState) String() string {
	switch s {
	case StateRequestingInsight:
		return "requesting_insight"
	case StateSaving:
		return "saving"
	default:
		return "editing"
	}
}

// Draft is the one in-flight entry a user is composing. The insight request
// snapshots content at dispatch and runs in the background, so the user can
// keep typing meanwhile; live flips to false when the draft is saved or
// discarded and guards against a late result landing on a dead draft.
type Draft struct {
	mu      sync.Mutex
	state   DraftState
	title   string
	content string
	insight string
	live    bool
}

// DraftView is a read snapshot handed to the HTTP layer.
type DraftView struct {
	State   string `json:"state"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Insight string `json:"ai_insight"`
}

func (d *Draft) view() DraftView {
	return DraftView{
		State:   d.state.String(),
		Title:   d.title,
		Content: d.content,
		Insight: d.insight,
	}
}

// applyInsight lands an async result on the draft. The request state is
// released either way; the insight slot is only written while the draft is
// still live, so a result for a saved or discarded draft is dropped.
func (d *Draft) applyInsight(insight string, reqErr error) (applied bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateRequestingInsight {
		d.state = StateEditing
	}
	if reqErr != nil || !d.live {
		return false
	}
	d.insight = insight
	return true
}

// 每个用户同一时刻只有一份草稿
var draftRegistry = cmap.New[*Draft]()

type DraftLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewDraftLogic(ctx context.Context, core *core.Core) *DraftLogic {
	return &DraftLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *DraftLogic) draft() *Draft {
	userID := l.GetUserInfo().User
	d, _ := draftRegistry.Get(userID)
	if d == nil {
		d = &Draft{state: StateEditing, live: true}
		if !draftRegistry.SetIfAbsent(userID, d) {
			d, _ = draftRegistry.Get(userID)
		}
	}
	return d
}

func (l *DraftLogic) GetDraft() DraftView {
	d := l.draft()
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view()
}

// UpdateDraft 编辑永远可用，后台的 insight 请求不会阻塞输入
func (l *DraftLogic) UpdateDraft(title, content string) DraftView {
	d := l.draft()
	d.mu.Lock()
	defer d.mu.Unlock()

	d.title = title
	d.content = content
	return d.view()
}

// RequestDraftInsight snapshots the draft content and asks the model in the
// background. The request that was in flight before is simply superseded:
// whichever result lands later wins the insight slot.
func (l *DraftLogic) RequestDraftInsight() (DraftView, error) {
	d := l.draft()

	d.mu.Lock()
	if d.state == StateSaving {
		d.mu.Unlock()
		return DraftView{}, errors.New("DraftLogic.RequestDraftInsight.state", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	content := d.content
	if strings.TrimSpace(content) == "" {
		d.mu.Unlock()
		return DraftView{}, errors.New("DraftLogic.RequestDraftInsight.blank", i18n.ERROR_EMPTY_CONTENT, nil).Code(http.StatusBadRequest)
	}
	d.state = StateRequestingInsight
	view := d.view()
	d.mu.Unlock()

	go safe.Run(func() {
		l.generateDraftInsight(d, content)
	})

	return view, nil
}

func (l *DraftLogic) generateDraftInsight(d *Draft, content string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	timer := l.core.Metrics().InsightTimer(l.core.Srv().AI().Name())
	insight, err := l.core.Srv().AI().GenerateInsight(ctx, content)
	timer.ObserveDuration()

	if err != nil {
		l.core.Metrics().InsightErrorInc(aiErrorKindLabel(err))
	}
	d.applyInsight(insight, err)
}

// SaveDraft turns the draft into a stored entry. The insight field is taken
// as-is at save time; a request still in flight no longer applies once the
// draft is gone.
func (l *DraftLogic) SaveDraft() (*types.JournalEntry, error) {
	userID := l.GetUserInfo().User
	d := l.draft()

	d.mu.Lock()
	if d.state == StateSaving {
		d.mu.Unlock()
		return nil, errors.New("DraftLogic.SaveDraft.state", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if strings.TrimSpace(d.title) == "" {
		d.mu.Unlock()
		return nil, errors.New("DraftLogic.SaveDraft.title", i18n.ERROR_EMPTY_TITLE, nil).Code(http.StatusBadRequest)
	}
	if strings.TrimSpace(d.content) == "" {
		d.mu.Unlock()
		return nil, errors.New("DraftLogic.SaveDraft.content", i18n.ERROR_EMPTY_CONTENT, nil).Code(http.StatusBadRequest)
	}
	d.state = StateSaving
	entry := types.JournalEntry{
		ID:        utils.GenUniqIDStr(),
		UserID:    userID,
		Title:     d.title,
		Content:   d.content,
		AIInsight: d.insight,
		CreatedAt: time.Now().Unix(),
	}
	d.mu.Unlock()

	if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		// 保存失败则回到编辑态，内容不丢
		d.mu.Lock()
		d.state = StateEditing
		d.mu.Unlock()
		return nil, errors.New("DraftLogic.SaveDraft.JournalEntryStore.Create", i18n.ERROR_STORE_UNAVAILABLE, err)
	}

	d.mu.Lock()
	d.live = false
	d.mu.Unlock()
	draftRegistry.Remove(userID)

	l.classifyEmotionAsync(entry)

	return &entry, nil
}

// DiscardDraft drops the draft without saving. A pending insight result for
// it is silently dropped when it lands.
func (l *DraftLogic) DiscardDraft() {
	userID := l.GetUserInfo().User
	if d, ok := draftRegistry.Get(userID); ok {
		d.mu.Lock()
		d.live = false
		d.mu.Unlock()
		draftRegistry.Remove(userID)
	}
}

// classifyEmotionAsync feeds the garden: one date-keyed snapshot per day,
// best effort, never blocks or fails the save.
func (l *DraftLogic) classifyEmotionAsync(entry types.JournalEntry) {
	go safe.RunWithLog(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()

		result, err := l.core.Srv().AI().ClassifyEmotion(ctx, entry.Content)
		if err != nil {
			l.core.Metrics().InsightErrorInc(aiErrorKindLabel(err))
			slog.Error("emotion classification failed",
				slog.String("entry_id", entry.ID),
				slog.Any("error", err))
			return
		}

		l.core.Metrics().EmotionClassifiedInc(result.Emotion)

		err = l.core.Store().EmotionSnapshotStore().Upsert(ctx, types.EmotionSnapshot{
			UserID:          entry.UserID,
			Date:            time.Unix(entry.CreatedAt, 0).UTC().Format("2006-01-02"),
			DominantEmotion: result.Emotion,
			Intensity:       result.Intensity,
			Summary:         result.Summary,
			UpdatedAt:       time.Now().Unix(),
		})
		if err != nil {
			slog.Error("emotion snapshot upsert failed",
				slog.String("user_id", entry.UserID),
				slog.Any("error", err))
		}
	}, "logic.v1.classifyEmotion")
}

func aiErrorKindLabel(err error) string {
	switch ai.KindOf(err) {
	case ai.KindUnconfigured:
		return "unconfigured"
	case ai.KindNetwork:
		return "network"
	default:
		return "upstream"
	}
}
