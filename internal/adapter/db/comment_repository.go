package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const listCommentsQuery = `
SELECT id, task_id, author, content, created_at
FROM task_comments
WHERE task_id = ?
ORDER BY created_at ASC, id ASC`

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, listCommentsQuery, taskID); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.Comment(row))
	}
	return comments, nil
}

const insertCommentQuery = `
INSERT INTO task_comments (task_id, author, content, created_at)
VALUES (?, ?, ?, ?)`

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	result, err := r.db.ExecContext(ctx, insertCommentQuery,
		comment.TaskID, comment.Author, comment.Content, comment.CreatedAt)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	comment.ID = uint64(id)
	return comment, nil
}
