package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements is idempotent DDL. Indexes live inside the CREATE TABLE
// definitions so re-running is safe on MySQL, which has no
// CREATE INDEX IF NOT EXISTS.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category VARCHAR(255) NOT NULL DEFAULT 'Inbox',
		priority_level TINYINT NOT NULL DEFAULT 2,
		status VARCHAR(32) NOT NULL DEFAULT 'backlog',
		source TEXT NOT NULL,
		due_date DATE NULL,
		eta DATE NULL,
		estimated_hours DOUBLE NULL,
		actual_hours DOUBLE NULL,
		tags TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		last_activity_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_tasks_status (status),
		KEY idx_tasks_category (category),
		KEY idx_tasks_updated (updated_at)
	)`,
	`CREATE TABLE IF NOT EXISTS task_comments (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		task_id BIGINT UNSIGNED NOT NULL,
		author VARCHAR(64) NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_task_comments_task (task_id),
		KEY idx_task_comments_created (created_at),
		CONSTRAINT fk_task_comments_task FOREIGN KEY (task_id)
			REFERENCES tasks (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS task_last_seen (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		task_id BIGINT UNSIGNED NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		last_seen_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_task_last_seen (task_id, user_id),
		KEY idx_task_last_seen_user (user_id),
		CONSTRAINT fk_task_last_seen_task FOREIGN KEY (task_id)
			REFERENCES tasks (id) ON DELETE CASCADE
	)`,
	// Intentionally no foreign key: activity history outlives its entity.
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		action VARCHAR(128) NOT NULL,
		entity_type VARCHAR(64) NULL,
		entity_id VARCHAR(64) NULL,
		details TEXT NULL,
		session_id VARCHAR(128) NULL,
		tokens_used BIGINT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_activities_action (action),
		KEY idx_activities_created (created_at),
		KEY idx_activities_entity (entity_type, entity_id)
	)`,
}

// EnsureSchema applies the schema once at startup, before any request is
// served. Callers racing on a fresh database are tolerated by the
// IF NOT EXISTS guards.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
