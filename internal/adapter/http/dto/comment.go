package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	Author  string `json:"author" binding:"required,max=64"`
	Content string `json:"content" binding:"required"`
}

type MarkSeenResponse struct {
	Success bool `json:"success"`
	Applied bool `json:"applied"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
