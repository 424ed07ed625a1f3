package dto

type TaskItem struct {
	ID             uint64   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Priority       string   `json:"priority"`
	PriorityLevel  int      `json:"priority_level"`
	Status         string   `json:"status"`
	Source         string   `json:"source"`
	DueDate        *string  `json:"due_date,omitempty"`
	ETA            *string  `json:"eta,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	ActualHours    *float64 `json:"actual_hours,omitempty"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
	LastActivityAt string   `json:"last_activity_at"`
	HasUnread      *bool    `json:"has_unread,omitempty"`
}

// CreateTaskRequest accepts either the canonical priority_level or the
// legacy textual priority. The label is deliberately unconstrained:
// unrecognized values fall back to Medium instead of rejecting the request.
type CreateTaskRequest struct {
	Title          string    `json:"title" binding:"required,max=255"`
	Description    *string   `json:"description" binding:"omitempty,max=65535"`
	Category       *string   `json:"category" binding:"omitempty,max=255"`
	Priority       *string   `json:"priority" binding:"omitempty,max=32"`
	PriorityLevel  *int      `json:"priority_level" binding:"omitempty,gte=1,lte=4"`
	Status         *string   `json:"status" binding:"omitempty,oneof=backlog doing review on_hold done archived"`
	Source         *string   `json:"source" binding:"omitempty,max=2048"`
	DueDate        *string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ETA            *string   `json:"eta" binding:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64  `json:"estimated_hours" binding:"omitempty,gte=0"`
	ActualHours    *float64  `json:"actual_hours" binding:"omitempty,gte=0"`
	Tags           *[]string `json:"tags"`
}

type UpdateTaskRequest struct {
	Title          *string   `json:"title" binding:"omitempty,max=255"`
	Description    *string   `json:"description" binding:"omitempty,max=65535"`
	Category       *string   `json:"category" binding:"omitempty,max=255"`
	Priority       *string   `json:"priority" binding:"omitempty,max=32"`
	PriorityLevel  *int      `json:"priority_level" binding:"omitempty,gte=1,lte=4"`
	Status         *string   `json:"status" binding:"omitempty,oneof=backlog doing review on_hold done archived"`
	Source         *string   `json:"source" binding:"omitempty,max=2048"`
	DueDate        *string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ETA            *string   `json:"eta" binding:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64  `json:"estimated_hours" binding:"omitempty,gte=0"`
	ActualHours    *float64  `json:"actual_hours" binding:"omitempty,gte=0"`
	Tags           *[]string `json:"tags"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}

type SearchResultItem struct {
	TaskItem
	Rank int `json:"rank"`
}

type SearchResponse struct {
	Query   string             `json:"query"`
	Count   int                `json:"count"`
	Results []SearchResultItem `json:"results"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalendarResponse struct {
	Success bool       `json:"success"`
	Data    []TaskItem `json:"data"`
	Count   int        `json:"count"`
	Range   DateRange  `json:"range"`
}
