package mapper

import (
	"time"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Category:       task.Category,
		Priority:       domain.PriorityLabel(task.PriorityLevel),
		PriorityLevel:  task.PriorityLevel,
		Status:         string(task.Status),
		Source:         task.Source,
		Tags:           task.Tags,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.Format(time.RFC3339),
		LastActivityAt: task.LastActivityAt.Format(time.RFC3339),
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}
	if task.ETA != nil {
		value := task.ETA.Format(dateLayout)
		item.ETA = &value
	}
	if task.EstimatedHours != nil {
		value := *task.EstimatedHours
		item.EstimatedHours = &value
	}
	if task.ActualHours != nil {
		value := *task.ActualHours
		item.ActualHours = &value
	}

	return item
}

func ToTaskItemsWithUnread(tasks []domain.TaskWithUnread) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		item := ToTaskItem(task.Task)
		hasUnread := task.HasUnread
		item.HasUnread = &hasUnread
		items = append(items, item)
	}
	return items
}

func ToSearchResultItems(results []domain.SearchResult) []dto.SearchResultItem {
	items := make([]dto.SearchResultItem, 0, len(results))
	for _, result := range results {
		items = append(items, dto.SearchResultItem{
			TaskItem: ToTaskItem(result.Task),
			Rank:     result.Rank,
		})
	}
	return items
}
