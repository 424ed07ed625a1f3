package domain

import (
	"encoding/json"
	"time"
)

// Activity action names, dot-namespaced by entity.
const (
	ActionTaskCreate       = "task.create"
	ActionTaskUpdate       = "task.update"
	ActionTaskStatusChange = "task.status_change"
	ActionTaskDelete       = "task.delete"
	ActionTaskComment      = "task.comment"
)

const EntityTypeTask = "task"

// Activity is one immutable audit record. Details holds the serialized
// payload as stored; EntityID is a weak string reference so history survives
// the referenced entity's deletion.
type Activity struct {
	ID         uint64
	Action     string
	EntityType string
	EntityID   string
	Details    json.RawMessage
	SessionID  string
	TokensUsed *int64
	CreatedAt  time.Time
}

// ActivityInput describes an activity to append. Details may be any
// JSON-serializable payload; the store owns its serialization.
type ActivityInput struct {
	Action     string
	EntityType string
	EntityID   string
	Details    any
	SessionID  string
	TokensUsed *int64
}

type ActivityFilters struct {
	Action     string
	EntityType string
	EntityID   string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

type ActivityStats struct {
	TotalActivities int64
	TotalTokens     int64
	ByAction        map[string]int64
	ByEntityType    map[string]int64
	Recent24h       int64
}

// Per-action details payloads. Producing call sites use these instead of
// free-form maps; they serialize to the same JSON shape the API exposes.

type TaskCreateDetails struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	PriorityLevel int    `json:"priority_level"`
	Status        string `json:"status"`
}

type TaskUpdateDetails struct {
	Title   string                 `json:"title"`
	Changes map[string]FieldChange `json:"changes"`
}

type TaskDeleteDetails struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type TaskCommentDetails struct {
	Author  string `json:"author"`
	Preview string `json:"preview"`
}
