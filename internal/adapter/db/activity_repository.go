package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

type ActivityRepository struct {
	db *sqlx.DB
}

type activityRow struct {
	ID         uint64         `db:"id"`
	Action     string         `db:"action"`
	EntityType sql.NullString `db:"entity_type"`
	EntityID   sql.NullString `db:"entity_id"`
	Details    sql.NullString `db:"details"`
	SessionID  sql.NullString `db:"session_id"`
	TokensUsed sql.NullInt64  `db:"tokens_used"`
	CreatedAt  time.Time      `db:"created_at"`
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const insertActivityQuery = `
INSERT INTO activities (action, entity_type, entity_id, details, session_id, tokens_used, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *ActivityRepository) Insert(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	details, err := encodeDetails(input.Details)
	if err != nil {
		return domain.Activity{}, err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, insertActivityQuery,
		input.Action,
		nullableString(input.EntityType),
		nullableString(input.EntityID),
		details,
		nullableString(input.SessionID),
		nullableInt(input.TokensUsed),
		now,
	)
	if err != nil {
		return domain.Activity{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Activity{}, err
	}

	activity := domain.Activity{
		ID:         uint64(id),
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		SessionID:  input.SessionID,
		TokensUsed: input.TokensUsed,
		CreatedAt:  now,
	}
	if details != nil {
		activity.Details = json.RawMessage(*details)
	}
	return activity, nil
}

func (r *ActivityRepository) List(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, action, entity_type, entity_id, details, session_id, tokens_used, created_at
FROM activities
WHERE 1=1`)
	var args []any

	if filters.Action != "" {
		sb.WriteString(" AND action = ?")
		args = append(args, filters.Action)
	}
	if filters.EntityType != "" {
		sb.WriteString(" AND entity_type = ?")
		args = append(args, filters.EntityType)
	}
	if filters.EntityID != "" {
		sb.WriteString(" AND entity_id = ?")
		args = append(args, filters.EntityID)
	}
	if filters.StartDate != nil {
		sb.WriteString(" AND created_at >= ?")
		args = append(args, *filters.StartDate)
	}
	if filters.EndDate != nil {
		sb.WriteString(" AND created_at <= ?")
		args = append(args, *filters.EndDate)
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	if filters.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filters.Limit)
	}
	if filters.Offset > 0 {
		if filters.Limit <= 0 {
			// MySQL requires LIMIT before OFFSET.
			sb.WriteString(" LIMIT 18446744073709551615")
		}
		sb.WriteString(" OFFSET ?")
		args = append(args, filters.Offset)
	}

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, mapActivityRowToDomain(row))
	}
	return activities, nil
}

func (r *ActivityRepository) Stats(ctx context.Context) (domain.ActivityStats, error) {
	stats := domain.ActivityStats{
		ByAction:     make(map[string]int64),
		ByEntityType: make(map[string]int64),
	}

	if err := r.db.GetContext(ctx, &stats.TotalActivities,
		"SELECT COUNT(*) FROM activities"); err != nil {
		return domain.ActivityStats{}, err
	}

	if err := r.db.GetContext(ctx, &stats.TotalTokens,
		"SELECT COALESCE(SUM(tokens_used), 0) FROM activities WHERE tokens_used IS NOT NULL"); err != nil {
		return domain.ActivityStats{}, err
	}

	type groupCount struct {
		Key   string `db:"grp"`
		Count int64  `db:"cnt"`
	}

	var byAction []groupCount
	if err := r.db.SelectContext(ctx, &byAction,
		"SELECT action AS grp, COUNT(*) AS cnt FROM activities GROUP BY action"); err != nil {
		return domain.ActivityStats{}, err
	}
	for _, row := range byAction {
		stats.ByAction[row.Key] = row.Count
	}

	var byEntity []groupCount
	if err := r.db.SelectContext(ctx, &byEntity,
		"SELECT entity_type AS grp, COUNT(*) AS cnt FROM activities WHERE entity_type IS NOT NULL GROUP BY entity_type"); err != nil {
		return domain.ActivityStats{}, err
	}
	for _, row := range byEntity {
		stats.ByEntityType[row.Key] = row.Count
	}

	if err := r.db.GetContext(ctx, &stats.Recent24h,
		"SELECT COUNT(*) FROM activities WHERE created_at >= ?",
		time.Now().UTC().Add(-24*time.Hour)); err != nil {
		return domain.ActivityStats{}, err
	}

	return stats, nil
}

func mapActivityRowToDomain(row activityRow) domain.Activity {
	activity := domain.Activity{
		ID:        row.ID,
		Action:    row.Action,
		CreatedAt: row.CreatedAt,
	}
	if row.EntityType.Valid {
		activity.EntityType = row.EntityType.String
	}
	if row.EntityID.Valid {
		activity.EntityID = row.EntityID.String
	}
	if row.Details.Valid {
		activity.Details = json.RawMessage(row.Details.String)
	}
	if row.SessionID.Valid {
		activity.SessionID = row.SessionID.String
	}
	if row.TokensUsed.Valid {
		value := row.TokensUsed.Int64
		activity.TokensUsed = &value
	}
	return activity
}

func encodeDetails(details any) (*string, error) {
	if details == nil {
		return nil, nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	encoded := string(raw)
	return &encoded, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}
