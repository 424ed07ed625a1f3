package domain

import "time"

type Comment struct {
	ID        uint64
	TaskID    uint64
	Author    string
	Content   string
	CreatedAt time.Time
}

// CommentPreviewLen caps the excerpt carried in task.comment activities.
const CommentPreviewLen = 100

// CommentPreview returns the first CommentPreviewLen characters of content,
// counted in runes so a multi-byte character is never split.
func CommentPreview(content string) string {
	runes := []rune(content)
	if len(runes) <= CommentPreviewLen {
		return content
	}
	return string(runes[:CommentPreviewLen])
}
