package mapper

import (
	"time"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/core/domain"
)

func ToActivityItems(activities []domain.Activity) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ToActivityItem(activity))
	}
	return items
}

func ToActivityItem(activity domain.Activity) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:         activity.ID,
		Action:     activity.Action,
		Details:    activity.Details,
		TokensUsed: activity.TokensUsed,
		CreatedAt:  activity.CreatedAt.Format(time.RFC3339),
	}

	if activity.EntityType != "" {
		value := activity.EntityType
		item.EntityType = &value
	}
	if activity.EntityID != "" {
		value := activity.EntityID
		item.EntityID = &value
	}
	if activity.SessionID != "" {
		value := activity.SessionID
		item.SessionID = &value
	}

	return item
}

func ToActivityStatsResponse(stats domain.ActivityStats) dto.ActivityStatsResponse {
	return dto.ActivityStatsResponse{
		TotalActivities: stats.TotalActivities,
		TotalTokens:     stats.TotalTokens,
		ByAction:        stats.ByAction,
		ByEntityType:    stats.ByEntityType,
		Recent24h:       stats.Recent24h,
	}
}
