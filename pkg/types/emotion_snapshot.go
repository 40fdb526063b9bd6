package types

// EmotionSnapshot is one day of the emotion garden: the dominant emotion
// classified from that day's journal writing, its intensity in [0,1] and a
// one-line summary. Keyed by (user_id, date), upserted on every create.
type EmotionSnapshot struct {
	ID              int64   `json:"id" db:"id"`
	UserID          string  `json:"user_id" db:"user_id"`
	Date            string  `json:"date" db:"date"`
	DominantEmotion string  `json:"dominant_emotion" db:"dominant_emotion"`
	Intensity       float64 `json:"intensity" db:"intensity"`
	Summary         string  `json:"summary" db:"summary"`
	UpdatedAt       int64   `json:"updated_at" db:"updated_at"`
}
