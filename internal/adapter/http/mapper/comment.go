package mapper

import (
	"time"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Author:    comment.Author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
