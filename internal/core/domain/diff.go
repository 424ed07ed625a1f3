package domain

import (
	"encoding/json"
	"time"
)

// FieldChange records one tracked field's transition inside an update.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

const dateLayout = "2006-01-02"

// DiffTask compares a task's state against a partial update and returns the
// tracked fields the patch actually changes, keyed by column name. Fields the
// patch does not supply never appear; supplied-but-equal values are dropped.
// Composite values (tags) compare by canonical JSON serialization, not
// identity.
func DiffTask(before Task, patch TaskPatch) map[string]FieldChange {
	changes := make(map[string]FieldChange)

	if patch.Title != nil && *patch.Title != before.Title {
		changes["title"] = FieldChange{From: before.Title, To: *patch.Title}
	}
	if patch.Description != nil && *patch.Description != before.Description {
		changes["description"] = FieldChange{From: before.Description, To: *patch.Description}
	}
	if patch.Category != nil && *patch.Category != before.Category {
		changes["category"] = FieldChange{From: before.Category, To: *patch.Category}
	}
	if patch.PriorityLevel != nil && *patch.PriorityLevel != before.PriorityLevel {
		changes["priority_level"] = FieldChange{From: before.PriorityLevel, To: *patch.PriorityLevel}
	}
	if patch.Status != nil && *patch.Status != before.Status {
		changes["status"] = FieldChange{From: string(before.Status), To: string(*patch.Status)}
	}
	if patch.DueDateSet && !sameDate(before.DueDate, patch.DueDate) {
		changes["due_date"] = FieldChange{From: formatDate(before.DueDate), To: formatDate(patch.DueDate)}
	}
	if patch.ETASet && !sameDate(before.ETA, patch.ETA) {
		changes["eta"] = FieldChange{From: formatDate(before.ETA), To: formatDate(patch.ETA)}
	}
	if patch.Tags != nil && !sameJSON(before.Tags, *patch.Tags) {
		changes["tags"] = FieldChange{From: before.Tags, To: *patch.Tags}
	}

	return changes
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func sameJSON(a, b any) bool {
	aRaw, errA := json.Marshal(a)
	bRaw, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(aRaw) == string(bRaw)
}
