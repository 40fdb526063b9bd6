package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/moodlingo/moodlingo/pkg/register"
	"github.com/moodlingo/moodlingo/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.EmotionSnapshotStore = NewEmotionSnapshotStore(provider)
	})
}

type EmotionSnapshotStore struct {
	CommonFields
}

// NewEmotionSnapshotStore
func NewEmotionSnapshotStore(provider SqlProviderAchieve) *EmotionSnapshotStore {
	repo := &EmotionSnapshotStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_EMOTION_SNAPSHOT)
	repo.SetAllColumns("id", "user_id", "date", "dominant_emotion", "intensity", "summary", "updated_at")
	return repo
}

// Upsert 同一用户同一天只保留最新快照
func (s *EmotionSnapshotStore) Upsert(ctx context.Context, data types.EmotionSnapshot) error {
	if data.UpdatedAt == 0 {
		data.UpdatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "date", "dominant_emotion", "intensity", "summary", "updated_at").
		Values(data.UserID, data.Date, data.DominantEmotion, data.Intensity, data.Summary, data.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, date) DO UPDATE SET
			dominant_emotion = EXCLUDED.dominant_emotion,
			intensity = EXCLUDED.intensity,
			summary = EXCLUDED.summary,
			updated_at = EXCLUDED.updated_at`)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListRecent 最近若干天的快照，date 倒序
func (s *EmotionSnapshotStore) ListRecent(ctx context.Context, userID string, limit uint64) ([]types.EmotionSnapshot, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC").Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.EmotionSnapshot
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *EmotionSnapshotStore) DeleteBefore(ctx context.Context, date string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Lt{"date": date})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
