package ports

import (
	"context"

	"github.com/tonygradient/tony-board/internal/core/domain"
)

type CommentRepository interface {
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}

type CommentService interface {
	ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, taskID uint64, author, content string) (domain.Comment, error)
}
