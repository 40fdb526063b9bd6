package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "moodlingo_"

const (
	TABLE_JOURNAL_ENTRY    = TableName("journal_entry")
	TABLE_EMOTION_SNAPSHOT = TableName("emotion_snapshot")
)
