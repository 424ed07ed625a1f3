package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

const taskColumns = `
	t.id, t.title, t.description, t.category, t.priority_level, t.status,
	t.source, t.due_date, t.eta, t.estimated_hours, t.actual_hours, t.tags,
	t.created_at, t.updated_at, t.last_activity_at`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             uint64          `db:"id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Category       string          `db:"category"`
	PriorityLevel  int             `db:"priority_level"`
	Status         string          `db:"status"`
	Source         string          `db:"source"`
	DueDate        sql.NullTime    `db:"due_date"`
	ETA            sql.NullTime    `db:"eta"`
	EstimatedHours sql.NullFloat64 `db:"estimated_hours"`
	ActualHours    sql.NullFloat64 `db:"actual_hours"`
	Tags           string          `db:"tags"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	LastActivityAt time.Time       `db:"last_activity_at"`
}

type taskListRow struct {
	taskRow
	HasUnread bool `db:"has_unread"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error) {
	var sb strings.Builder
	// The CASE expression is the SQL form of domain.TaskUnread.
	sb.WriteString(`SELECT` + taskColumns + `,
	CASE WHEN ls.last_seen_at IS NULL OR t.last_activity_at > ls.last_seen_at
		THEN TRUE ELSE FALSE END AS has_unread
FROM tasks t
LEFT JOIN task_last_seen ls ON ls.task_id = t.id AND ls.user_id = ?
WHERE 1=1`)
	args := []any{filters.UserID}

	if filters.Status != "" {
		sb.WriteString(" AND t.status = ?")
		args = append(args, filters.Status)
	}
	if filters.Category != "" {
		sb.WriteString(" AND t.category = ?")
		args = append(args, filters.Category)
	}
	if filters.Search != "" {
		sb.WriteString(" AND (LOWER(t.title) LIKE ? OR LOWER(t.description) LIKE ?)")
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		args = append(args, pattern, pattern)
	}

	sb.WriteString(" ORDER BY t.priority_level DESC, t.updated_at DESC")

	var rows []taskListRow
	if err := r.db.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskWithUnread, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.TaskWithUnread{
			Task:      mapTaskRowToDomainTask(row.taskRow),
			HasUnread: row.HasUnread,
		})
	}
	return tasks, nil
}

const getTaskQuery = `SELECT` + taskColumns + ` FROM tasks t WHERE t.id = ?`

func (r *TaskRepository) Get(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

const insertTaskQuery = `
INSERT INTO tasks (
	title, description, category, priority_level, status, source,
	due_date, eta, estimated_hours, actual_hours, tags,
	created_at, updated_at, last_activity_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.Title, task.Description, task.Category, task.PriorityLevel,
		string(task.Status), task.Source,
		nullableTime(task.DueDate), nullableTime(task.ETA),
		nullableFloat(task.EstimatedHours), nullableFloat(task.ActualHours),
		encodeTags(task.Tags),
		task.CreatedAt, task.UpdatedAt, task.LastActivityAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = uint64(id)
	return task, nil
}

const updateTaskQuery = `
UPDATE tasks SET
	title = ?, description = ?, category = ?, priority_level = ?, status = ?,
	source = ?, due_date = ?, eta = ?, estimated_hours = ?, actual_hours = ?,
	tags = ?, updated_at = ?, last_activity_at = ?
WHERE id = ?`

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.Title, task.Description, task.Category, task.PriorityLevel,
		string(task.Status), task.Source,
		nullableTime(task.DueDate), nullableTime(task.ETA),
		nullableFloat(task.EstimatedHours), nullableFloat(task.ActualHours),
		encodeTags(task.Tags),
		task.UpdatedAt, task.LastActivityAt,
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	// Comments and seen checkpoints cascade at the schema level.
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *TaskRepository) TouchActivity(ctx context.Context, id uint64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET last_activity_at = ? WHERE id = ?", at, id)
	return err
}

const dateRangeQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE (t.due_date IS NOT NULL AND t.due_date >= ? AND t.due_date <= ?)
   OR (t.eta IS NOT NULL AND t.eta >= ? AND t.eta <= ?)
ORDER BY COALESCE(t.eta, t.due_date) ASC, t.priority_level DESC`

func (r *TaskRepository) ByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, dateRangeQuery, start, end, start, end); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

const searchTasksQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE LOWER(t.title) LIKE ? OR LOWER(t.description) LIKE ?
ORDER BY t.updated_at DESC
LIMIT ?`

func (r *TaskRepository) Search(ctx context.Context, query string, limit int) ([]domain.Task, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, searchTasksQuery, pattern, pattern, limit); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

func mapTaskRowsToDomainTasks(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		Category:       row.Category,
		PriorityLevel:  row.PriorityLevel,
		Status:         domain.TaskStatus(row.Status),
		Source:         row.Source,
		Tags:           decodeTags(row.Tags),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		LastActivityAt: row.LastActivityAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.ETA.Valid {
		value := row.ETA.Time
		task.ETA = &value
	}
	if row.EstimatedHours.Valid {
		value := row.EstimatedHours.Float64
		task.EstimatedHours = &value
	}
	if row.ActualHours.Valid {
		value := row.ActualHours.Float64
		task.ActualHours = &value
	}

	return task
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// Tags persist as a JSON array in a TEXT column; order is preserved and
// duplicates are kept as-is.
func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}
