package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

// BuildCreateTaskInput turns a bound create request into a domain input. The
// raw field map distinguishes "absent" from "present but mistyped": a field
// that appears in the JSON body yet failed to bind is a payload error, not a
// silent default.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority_level") && req.PriorityLevel == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{Title: title}

	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Category != nil {
		input.Category = *req.Category
	}
	if req.Source != nil {
		input.Source = *req.Source
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}

	switch {
	case req.PriorityLevel != nil:
		input.PriorityLevel = *req.PriorityLevel
	case req.Priority != nil:
		input.PriorityLevel = domain.PriorityLevelFromLabel(*req.Priority)
	}

	var err error
	if input.DueDate, err = parseDate(req.DueDate); err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if input.ETA, err = parseDate(req.ETA); err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input.EstimatedHours = req.EstimatedHours
	input.ActualHours = req.ActualHours
	if req.Tags != nil {
		input.Tags = *req.Tags
	}

	return input, nil
}

// BuildTaskPatch turns a bound update request into a PATCH. Only fields
// present in the raw body land in the patch; an explicit JSON null clears a
// clearable field.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	var patch domain.TaskPatch

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &value
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil && !isJSONNull(raw["description"]) {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		value := ""
		if req.Description != nil {
			value = *req.Description
		}
		patch.Description = &value
	}

	if hasJSONField(raw, "category") {
		if req.Category == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Category = req.Category
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		value := domain.TaskStatus(*req.Status)
		patch.Status = &value
	}

	if hasJSONField(raw, "source") {
		if req.Source == nil && !isJSONNull(raw["source"]) {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		value := ""
		if req.Source != nil {
			value = *req.Source
		}
		patch.Source = &value
	}

	// Legacy label maps through the single conversion table when the
	// canonical level was not supplied alongside it.
	switch {
	case hasJSONField(raw, "priority_level"):
		if req.PriorityLevel == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.PriorityLevel = req.PriorityLevel
	case hasJSONField(raw, "priority"):
		if req.Priority == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		level := domain.PriorityLevelFromLabel(*req.Priority)
		patch.PriorityLevel = &level
	}

	if hasJSONField(raw, "due_date") {
		patch.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			value, err := parseDate(req.DueDate)
			if err != nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.DueDate = value
		}
	}

	if hasJSONField(raw, "eta") {
		patch.ETASet = true
		if !isJSONNull(raw["eta"]) {
			if req.ETA == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			value, err := parseDate(req.ETA)
			if err != nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.ETA = value
		}
	}

	if hasJSONField(raw, "estimated_hours") {
		patch.EstimatedHoursSet = true
		if !isJSONNull(raw["estimated_hours"]) {
			if req.EstimatedHours == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.EstimatedHours = req.EstimatedHours
		}
	}

	if hasJSONField(raw, "actual_hours") {
		patch.ActualHoursSet = true
		if !isJSONNull(raw["actual_hours"]) {
			if req.ActualHours == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.ActualHours = req.ActualHours
		}
	}

	if hasJSONField(raw, "tags") {
		tags := []string{}
		if !isJSONNull(raw["tags"]) {
			if req.Tags == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			tags = *req.Tags
		}
		patch.Tags = &tags
	}

	return patch, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "description", "category", "priority", "priority_level",
		"status", "source", "due_date", "eta", "estimated_hours",
		"actual_hours", "tags",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
