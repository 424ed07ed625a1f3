package domain

import "time"

// SeenCheckpoint marks when a user last viewed a task. At most one exists
// per (task, user) pair; re-marking overwrites LastSeenAt.
type SeenCheckpoint struct {
	TaskID     uint64
	UserID     string
	LastSeenAt time.Time
}

// TaskUnread derives the unread flag: a task is unread when the user has no
// checkpoint or activity happened after their last look. The db adapter
// inlines this predicate in SQL (the unread count and the per-row has_unread
// in the task list); keep those queries in step with any change here.
func TaskUnread(lastActivityAt time.Time, lastSeenAt *time.Time) bool {
	return lastSeenAt == nil || lastActivityAt.After(*lastSeenAt)
}
