package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

type SeenRepository struct {
	db *sqlx.DB
}

var _ ports.SeenRepository = (*SeenRepository)(nil)

func NewSeenRepository(db *sqlx.DB) *SeenRepository {
	return &SeenRepository{db: db}
}

const upsertSeenQuery = `
INSERT INTO task_last_seen (task_id, user_id, last_seen_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE last_seen_at = ?`

func (r *SeenRepository) Upsert(ctx context.Context, checkpoint domain.SeenCheckpoint) error {
	_, err := r.db.ExecContext(ctx, upsertSeenQuery,
		checkpoint.TaskID, checkpoint.UserID, checkpoint.LastSeenAt, checkpoint.LastSeenAt)
	return err
}

// The WHERE clause is the SQL form of domain.TaskUnread; change both together.
const countUnreadQuery = `
SELECT COUNT(*)
FROM tasks t
LEFT JOIN task_last_seen ls ON ls.task_id = t.id AND ls.user_id = ?
WHERE ls.last_seen_at IS NULL OR t.last_activity_at > ls.last_seen_at`

func (r *SeenRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, countUnreadQuery, userID); err != nil {
		return 0, err
	}
	return count, nil
}
