package store

import (
	"context"

	"github.com/moodlingo/moodlingo/pkg/sqlstore"
	"github.com/moodlingo/moodlingo/pkg/types"
)

// JournalEntryStore 定义日记记录的存储接口
type JournalEntryStore interface {
	sqlstore.SqlCommons
	// Create 保存一条新日记，created_at 由存储层分配
	Create(ctx context.Context, data types.JournalEntry) error
	// Get 按 id 获取指定用户的日记
	Get(ctx context.Context, userID, id string) (*types.JournalEntry, error)
	// List 按 created_at 倒序返回用户的日记
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.JournalEntry, error)
	// Delete 删除指定日记
	Delete(ctx context.Context, userID, id string) error
	Total(ctx context.Context, userID string) (int64, error)
}

// EmotionSnapshotStore 情绪快照存储，按 (user_id, date) 去重
type EmotionSnapshotStore interface {
	sqlstore.SqlCommons
	Upsert(ctx context.Context, data types.EmotionSnapshot) error
	ListRecent(ctx context.Context, userID string, limit uint64) ([]types.EmotionSnapshot, error)
	DeleteBefore(ctx context.Context, date string) error
}
