package models

// Comment represents a note left on a task
type Comment struct {
	TaskID   int    `json:"task_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// NewComment is the body of POST /todos/{id}/comments
type NewComment struct {
	Content string `json:"content"`
}
