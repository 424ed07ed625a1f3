package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

// SeenService tracks per-user last-viewed checkpoints. All writes are
// advisory: the board must keep working when notification state lags.
type SeenService struct {
	seenRepository ports.SeenRepository
}

func NewSeenService(seenRepository ports.SeenRepository) *SeenService {
	return &SeenService{seenRepository: seenRepository}
}

var _ ports.SeenService = (*SeenService)(nil)

// MarkSeen upserts the (task, user) checkpoint to now. Returns false when
// the write was skipped because the store rejected it.
func (s *SeenService) MarkSeen(ctx context.Context, taskID uint64, userID string) bool {
	checkpoint := domain.SeenCheckpoint{
		TaskID:     taskID,
		UserID:     userID,
		LastSeenAt: time.Now().UTC(),
	}
	if err := s.seenRepository.Upsert(ctx, checkpoint); err != nil {
		zap.L().Warn("failed to mark task seen",
			zap.Uint64("task_id", taskID), zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return true
}

func (s *SeenService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.seenRepository.CountUnread(ctx, userID)
}
