package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("task title is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrEmptyContent     = errors.New("comment content is required")
	ErrInvalidAuthor    = errors.New("comment author not allowed")
	ErrEmptyAction      = errors.New("activity action is required")
	ErrEmptySearchQuery = errors.New("search query is required")
	ErrInvalidDateRange = errors.New("invalid date range")
)
