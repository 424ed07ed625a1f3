package ports

import (
	"context"

	"github.com/tonygradient/tony-board/internal/core/domain"
)

type SeenRepository interface {
	Upsert(ctx context.Context, checkpoint domain.SeenCheckpoint) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type SeenService interface {
	// MarkSeen is best-effort: the returned flag distinguishes an applied
	// checkpoint from a skipped one, it never surfaces an error.
	MarkSeen(ctx context.Context, taskID uint64, userID string) bool
	UnreadCount(ctx context.Context, userID string) (int64, error)
}
