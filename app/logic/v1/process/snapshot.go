package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/register"
)

// SNAPSHOT_RETENTION_DAYS 情绪快照默认保留天数
const SNAPSHOT_RETENTION_DAYS = 31

type SnapshotProcess struct {
	core *core.Core
}

func NewSnapshotProcess(core *core.Core) *SnapshotProcess {
	return &SnapshotProcess{core: core}
}

func (p *SnapshotProcess) ClearOldSnapshots(ctx context.Context) error {
	days := p.core.Cfg().Retention.SnapshotDays
	if days <= 0 {
		days = SNAPSHOT_RETENTION_DAYS
	}
	date := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	return p.core.Store().EmotionSnapshotStore().DeleteBefore(ctx, date)
}

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		provider.Cron().AddFunc("0 4 * * *", func() {
			err := NewSnapshotProcess(provider.Core()).ClearOldSnapshots(context.Background())
			if err != nil {
				slog.Error("Failed to clear old emotion snapshots", slog.String("error", err.Error()))
			} else {
				slog.Info("Successfully cleared old emotion snapshots")
			}
		})
	})
}
