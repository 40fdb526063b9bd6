package types

import "time"

// JournalEntry is one user-authored diary record. Title and content are
// immutable once created; AIInsight is attached at save time if the user
// requested one for the draft. CreatedAt is assigned by the store and is the
// total order for listing (descending).
type JournalEntry struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	AIInsight string `json:"ai_insight,omitempty" db:"ai_insight"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// DisplayDate renders created_at the way the journal list shows it,
// e.g. "June 7, 2025". The search filter matches against this string.
func (e JournalEntry) DisplayDate() string {
	return time.Unix(e.CreatedAt, 0).UTC().Format("January 2, 2006")
}

type EntryEventOp string

const (
	EntryCreated EntryEventOp = "created"
	EntryDeleted EntryEventOp = "deleted"
)

// EntryEvent is pushed through the store notifier on every successful
// create/delete, keeping mounted list views live without polling.
type EntryEvent struct {
	Op     EntryEventOp  `json:"op"`
	UserID string        `json:"user_id"`
	ID     string        `json:"id"`
	Entry  *JournalEntry `json:"entry,omitempty"`
}
