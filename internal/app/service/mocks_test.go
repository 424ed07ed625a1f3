package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tonygradient/tony-board/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error) {
	args := m.Called(ctx, filters)

	var tasks []domain.TaskWithUnread
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskWithUnread)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Get(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	if rf, ok := args.Get(0).(func(context.Context, domain.Task) domain.Task); ok {
		return rf(ctx, task), args.Error(1)
	}
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) TouchActivity(ctx context.Context, id uint64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *taskRepositoryMock) ByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, start, end)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Search(ctx context.Context, query string, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, query, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, comment)
	if rf, ok := args.Get(0).(func(context.Context, domain.Comment) domain.Comment); ok {
		return rf(ctx, comment), args.Error(1)
	}
	return args.Get(0).(domain.Comment), args.Error(1)
}

type seenRepositoryMock struct {
	mock.Mock
}

func (m *seenRepositoryMock) Upsert(ctx context.Context, checkpoint domain.SeenCheckpoint) error {
	args := m.Called(ctx, checkpoint)
	return args.Error(0)
}

func (m *seenRepositoryMock) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type activityRepositoryMock struct {
	mock.Mock
}

func (m *activityRepositoryMock) Insert(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *activityRepositoryMock) List(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	args := m.Called(ctx, filters)

	var activities []domain.Activity
	if value := args.Get(0); value != nil {
		activities = value.([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *activityRepositoryMock) Stats(ctx context.Context) (domain.ActivityStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ActivityStats), args.Error(1)
}
