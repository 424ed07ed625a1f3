package domain

import "time"

type TaskStatus string

const (
	TaskStatusBacklog  TaskStatus = "backlog"
	TaskStatusDoing    TaskStatus = "doing"
	TaskStatusReview   TaskStatus = "review"
	TaskStatusOnHold   TaskStatus = "on_hold"
	TaskStatusDone     TaskStatus = "done"
	TaskStatusArchived TaskStatus = "archived"
)

// ValidTaskStatus reports whether s is one of the six board columns.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusBacklog, TaskStatusDoing, TaskStatusReview,
		TaskStatusOnHold, TaskStatusDone, TaskStatusArchived:
		return true
	}
	return false
}

const DefaultCategory = "Inbox"

type Task struct {
	ID             uint64
	Title          string
	Description    string
	Category       string
	PriorityLevel  int
	Status         TaskStatus
	Source         string
	DueDate        *time.Time
	ETA            *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastActivityAt time.Time
}

// TaskWithUnread is a list-view row: the task plus its per-user unread flag.
type TaskWithUnread struct {
	Task
	HasUnread bool
}

// SearchResult carries a constant rank; no relevance scoring is computed.
type SearchResult struct {
	Task
	Rank int
}

type CreateTaskInput struct {
	Title          string
	Description    string
	Category       string
	PriorityLevel  int
	Status         TaskStatus
	Source         string
	DueDate        *time.Time
	ETA            *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
}

// TaskPatch carries a partial update. A nil pointer means the field was not
// supplied and must be preserved. Clearable fields get a Set flag so an
// explicit JSON null can reset them.
type TaskPatch struct {
	Title             *string
	Description       *string
	Category          *string
	PriorityLevel     *int
	Status            *TaskStatus
	Source            *string
	DueDate           *time.Time
	DueDateSet        bool
	ETA               *time.Time
	ETASet            bool
	EstimatedHours    *float64
	EstimatedHoursSet bool
	ActualHours       *float64
	ActualHoursSet    bool
	Tags              *[]string
}

// Apply merges the patch over the task, PATCH-style: untouched fields keep
// their prior values. Timestamps are the caller's concern.
func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.PriorityLevel != nil {
		t.PriorityLevel = *p.PriorityLevel
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Source != nil {
		t.Source = *p.Source
	}
	if p.DueDateSet {
		t.DueDate = p.DueDate
	}
	if p.ETASet {
		t.ETA = p.ETA
	}
	if p.EstimatedHoursSet {
		t.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHoursSet {
		t.ActualHours = p.ActualHours
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
}

// StatusChanged reports whether the patch supplies a status different from
// the task's current one. Drives the task.status_change classification.
func (t Task) StatusChanged(p TaskPatch) bool {
	return p.Status != nil && *p.Status != t.Status
}

type TaskFilters struct {
	Status   string
	Category string
	Search   string
	UserID   string
}
