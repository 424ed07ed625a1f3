package ports

import (
	"context"
	"time"

	"github.com/tonygradient/tony-board/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) (bool, error)
	// TouchActivity bumps last_activity_at only; used by the comment path.
	TouchActivity(ctx context.Context, id uint64, at time.Time) error
	ByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (bool, error)
	TasksByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error)
	SearchTasks(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}
