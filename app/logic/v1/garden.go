package v1

import (
	"context"
	"database/sql"

	"github.com/samber/lo"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/emotion"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/types"
)

// GARDEN_DAYS 花园展示最近几天的情绪
const GARDEN_DAYS = 7

type GardenLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewGardenLogic(ctx context.Context, core *core.Core) *GardenLogic {
	return &GardenLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type GardenPlant struct {
	Date            string              `json:"date"`
	DominantEmotion string              `json:"dominant_emotion"`
	Intensity       float64             `json:"intensity"`
	Summary         string              `json:"summary"`
	Visual          emotion.PlantVisual `json:"visual"`
}

// ListGarden returns the last days' snapshots oldest first, each joined
// with its plant visual.
func (l *GardenLogic) ListGarden() ([]GardenPlant, error) {
	snapshots, err := l.core.Store().EmotionSnapshotStore().ListRecent(l.ctx, l.GetUserInfo().User, GARDEN_DAYS)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("GardenLogic.ListGarden.EmotionSnapshotStore.ListRecent", i18n.ERROR_FETCH_FAILED, err)
	}

	plants := lo.Map(snapshots, func(item types.EmotionSnapshot, _ int) GardenPlant {
		return GardenPlant{
			Date:            item.Date,
			DominantEmotion: item.DominantEmotion,
			Intensity:       item.Intensity,
			Summary:         item.Summary,
			Visual:          emotion.PlantFor(item.DominantEmotion, item.Intensity),
		}
	})

	return lo.Reverse(plants), nil
}
