package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

const defaultSearchLimit = 10

type TaskService struct {
	taskRepository     ports.TaskRepository
	activityRepository ports.ActivityRepository
}

func NewTaskService(taskRepository ports.TaskRepository, activityRepository ports.ActivityRepository) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		activityRepository: activityRepository,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error) {
	return s.taskRepository.List(ctx, filters)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	now := time.Now().UTC()
	task := domain.Task{
		Title:          title,
		Description:    input.Description,
		Category:       input.Category,
		PriorityLevel:  input.PriorityLevel,
		Status:         input.Status,
		Source:         input.Source,
		DueDate:        input.DueDate,
		ETA:            input.ETA,
		EstimatedHours: input.EstimatedHours,
		ActualHours:    input.ActualHours,
		Tags:           input.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}
	if task.Category == "" {
		task.Category = domain.DefaultCategory
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusBacklog
	}
	if !domain.ValidTaskStatus(task.Status) {
		return domain.Task{}, domain.ErrInvalidStatus
	}
	if !domain.ValidPriorityLevel(task.PriorityLevel) {
		task.PriorityLevel = domain.PriorityMedium
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	created, err := s.taskRepository.Create(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	s.logActivity(ctx, domain.ActivityInput{
		Action:     domain.ActionTaskCreate,
		EntityType: domain.EntityTypeTask,
		EntityID:   strconv.FormatUint(created.ID, 10),
		Details: domain.TaskCreateDetails{
			Title:         created.Title,
			Category:      created.Category,
			PriorityLevel: created.PriorityLevel,
			Status:        string(created.Status),
		},
	})

	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	before, err := s.taskRepository.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if patch.Status != nil && !domain.ValidTaskStatus(*patch.Status) {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	changes := domain.DiffTask(before, patch)
	statusChanged := before.StatusChanged(patch)

	task := before
	task.Apply(patch)
	now := time.Now().UTC()
	task.UpdatedAt = now
	task.LastActivityAt = now

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	action := domain.ActionTaskUpdate
	if statusChanged {
		action = domain.ActionTaskStatusChange
	}
	s.logActivity(ctx, domain.ActivityInput{
		Action:     action,
		EntityType: domain.EntityTypeTask,
		EntityID:   strconv.FormatUint(id, 10),
		Details: domain.TaskUpdateDetails{
			Title:   task.Title,
			Changes: changes,
		},
	})

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	// Capture the row before deletion: the activity payload survives it.
	before, err := s.taskRepository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.taskRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	s.logActivity(ctx, domain.ActivityInput{
		Action:     domain.ActionTaskDelete,
		EntityType: domain.EntityTypeTask,
		EntityID:   strconv.FormatUint(id, 10),
		Details: domain.TaskDeleteDetails{
			Title:    before.Title,
			Category: before.Category,
		},
	})

	return true, nil
}

func (s *TaskService) TasksByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.taskRepository.ByDateRange(ctx, start, end)
}

func (s *TaskService) SearchTasks(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptySearchQuery
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	tasks, err := s.taskRepository.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, domain.SearchResult{Task: task, Rank: 1})
	}
	return results, nil
}

// logActivity appends to the audit trail without ever failing the caller's
// primary mutation.
func (s *TaskService) logActivity(ctx context.Context, input domain.ActivityInput) {
	if _, err := s.activityRepository.Insert(ctx, input); err != nil {
		zap.L().Warn("activity log write failed", zap.String("action", input.Action), zap.Error(err))
	}
}
