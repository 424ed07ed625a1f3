package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/adapter/http/handlers"
	"github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/pkg/apierrors"
	"github.com/tonygradient/tony-board/pkg/translator"
)

const testDefaultUserID = "ash"

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.TaskWithUnread, error) {
	args := m.Called(ctx, filters)

	var tasks []domain.TaskWithUnread
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskWithUnread)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) TasksByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, start, end)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) SearchTasks(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query, limit)

	var results []domain.SearchResult
	if value := args.Get(0); value != nil {
		results = value.([]domain.SearchResult)
	}
	return results, args.Error(1)
}

func sampleTask() domain.Task {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC)

	return domain.Task{
		ID:             1,
		Title:          "Build board API",
		Description:    "ship endpoint",
		Category:       "Backend",
		PriorityLevel:  3,
		Status:         domain.TaskStatusDoing,
		DueDate:        &due,
		Tags:           []string{"api"},
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		LastActivityAt: updatedAt,
	}
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, mock.MatchedBy(func(filters domain.TaskFilters) bool {
		return filters.Status == "doing" && filters.UserID == testDefaultUserID
	})).Return(
		[]domain.TaskWithUnread{{Task: sampleTask(), HasUnread: true}},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=doing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, uint64(1), got[0].ID)
	require.Equal(t, "Build board API", got[0].Title)
	require.Equal(t, "High", got[0].Priority)
	require.Equal(t, 3, got[0].PriorityLevel)
	require.Equal(t, "doing", got[0].Status)
	require.Equal(t, "2026-03-20", *got[0].DueDate)
	require.Equal(t, "2026-02-13T10:20:30Z", got[0].CreatedAt)
	require.NotNil(t, got[0].HasUnread)
	require.True(t, *got[0].HasUnread)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, uint64(999)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	handler := handlers.NewTaskHandler(new(taskServiceMock), testDefaultUserID)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/invalid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task id.", got.ErrDetails.Message)
}

func TestTaskHandler_CreateTask_PriorityLabelMapped(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "New task" && input.PriorityLevel == 4
	})).Return(sampleTask(), nil).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), handler.CreateTask)

	body := `{"title": "New task", "priority": "Urgent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	handler := handlers.NewTaskHandler(new(taskServiceMock), testDefaultUserID)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"category": "Inbox"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
}

func TestTaskHandler_UpdateTask_NullClearsETA(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(1), mock.MatchedBy(func(patch domain.TaskPatch) bool {
		return patch.ETASet && patch.ETA == nil && patch.Title == nil
	})).Return(sampleTask(), nil).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.PATCH("/api/tasks/:id", middleware.LanguageMiddleware(), handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{"eta": null}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_EmptyPayload(t *testing.T) {
	handler := handlers.NewTaskHandler(new(taskServiceMock), testDefaultUserID)

	router := gin.New()
	router.PATCH("/api/tasks/:id", middleware.LanguageMiddleware(), handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(1)).Return(true, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.DELETE("/api/tasks/:id", middleware.LanguageMiddleware(), handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DeleteTaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Missing(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(999)).Return(false, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.DELETE("/api/tasks/:id", middleware.LanguageMiddleware(), handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Calendar_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("TasksByDateRange", mock.Anything,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	).Return([]domain.Task{sampleTask()}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.GET("/api/tasks/calendar", middleware.LanguageMiddleware(), handler.TasksByDateRange)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/calendar?start=2026-03-01&end=2026-03-31", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, 1, got.Count)
	require.Equal(t, "2026-03-01", got.Range.Start)
	require.Equal(t, "2026-03-31", got.Range.End)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Calendar_MalformedDates(t *testing.T) {
	handler := handlers.NewTaskHandler(new(taskServiceMock), testDefaultUserID)

	router := gin.New()
	router.GET("/api/tasks/calendar", middleware.LanguageMiddleware(), handler.TasksByDateRange)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/calendar?start=yesterday&end=2026-03-31", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid date range. Use YYYY-MM-DD.", got.ErrDetails.Message)
}

func TestTaskHandler_Search_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("SearchTasks", mock.Anything, "board", 5).Return(
		[]domain.SearchResult{{Task: sampleTask(), Rank: 1}},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.GET("/api/search", middleware.LanguageMiddleware(), handler.SearchTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=board&limit=5", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "board", got.Query)
	require.Equal(t, 1, got.Count)
	require.Len(t, got.Results, 1)
	require.Equal(t, 1, got.Results[0].Rank)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Search_MissingQuery(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("SearchTasks", mock.Anything, "", 0).Return(nil, domain.ErrEmptySearchQuery).Once()
	handler := handlers.NewTaskHandler(serviceMock, testDefaultUserID)

	router := gin.New()
	router.GET("/api/search", middleware.LanguageMiddleware(), handler.SearchTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Search query is required.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
