package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

type CommentService struct {
	commentRepository  ports.CommentRepository
	taskRepository     ports.TaskRepository
	activityRepository ports.ActivityRepository
	allowedAuthors     []string
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	activityRepository ports.ActivityRepository,
	allowedAuthors []string,
) *CommentService {
	return &CommentService{
		commentRepository:  commentRepository,
		taskRepository:     taskRepository,
		activityRepository: activityRepository,
		allowedAuthors:     allowedAuthors,
	}
}

var _ ports.CommentService = (*CommentService)(nil)

func (s *CommentService) ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	return s.commentRepository.ListByTask(ctx, taskID)
}

func (s *CommentService) CreateComment(ctx context.Context, taskID uint64, author, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyContent
	}
	if !s.authorAllowed(author) {
		return domain.Comment{}, domain.ErrInvalidAuthor
	}

	if _, err := s.taskRepository.Get(ctx, taskID); err != nil {
		return domain.Comment{}, err
	}

	now := time.Now().UTC()

	// Advisory freshness bump for the parent task; a failure here must not
	// block the comment itself.
	if err := s.taskRepository.TouchActivity(ctx, taskID, now); err != nil {
		zap.L().Warn("failed to touch task activity timestamp",
			zap.Uint64("task_id", taskID), zap.Error(err))
	}

	comment, err := s.commentRepository.Create(ctx, domain.Comment{
		TaskID:    taskID,
		Author:    author,
		Content:   content,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Comment{}, err
	}

	s.logActivity(ctx, domain.ActivityInput{
		Action:     domain.ActionTaskComment,
		EntityType: domain.EntityTypeTask,
		EntityID:   strconv.FormatUint(taskID, 10),
		Details: domain.TaskCommentDetails{
			Author:  author,
			Preview: domain.CommentPreview(content),
		},
	})

	return comment, nil
}

func (s *CommentService) authorAllowed(author string) bool {
	for _, allowed := range s.allowedAuthors {
		if author == allowed {
			return true
		}
	}
	return false
}

func (s *CommentService) logActivity(ctx context.Context, input domain.ActivityInput) {
	if _, err := s.activityRepository.Insert(ctx, input); err != nil {
		zap.L().Warn("activity log write failed", zap.String("action", input.Action), zap.Error(err))
	}
}
