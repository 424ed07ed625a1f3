package dto

import "encoding/json"

type ActivityItem struct {
	ID         uint64          `json:"id"`
	Action     string          `json:"action"`
	EntityType *string         `json:"entity_type"`
	EntityID   *string         `json:"entity_id"`
	Details    json.RawMessage `json:"details"`
	SessionID  *string         `json:"session_id"`
	TokensUsed *int64          `json:"tokens_used"`
	CreatedAt  string          `json:"created_at"`
}

type RecordActivityRequest struct {
	Action     string          `json:"action" binding:"required,max=128"`
	EntityType *string         `json:"entity_type" binding:"omitempty,max=64"`
	EntityID   *string         `json:"entity_id" binding:"omitempty,max=64"`
	Details    json.RawMessage `json:"details"`
	SessionID  *string         `json:"session_id" binding:"omitempty,max=128"`
	TokensUsed *int64          `json:"tokens_used" binding:"omitempty,gte=0"`
}

type ActivityStatsResponse struct {
	TotalActivities int64            `json:"total_activities"`
	TotalTokens     int64            `json:"total_tokens"`
	ByAction        map[string]int64 `json:"by_action"`
	ByEntityType    map[string]int64 `json:"by_entity_type"`
	Recent24h       int64            `json:"recent_24h"`
}
