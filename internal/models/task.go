package models

// Task represents a single todo item as returned by the API
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	// AssignedTo is the assignee's user ID, nil when unassigned
	AssignedTo *int `json:"assigned_to"`
	// AssignedName is a denormalized display name. It is never sent back to the server.
	AssignedName string `json:"assigned_name,omitempty"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// AssigneeLabel returns the display name of the assignee or "Unassigned"
func (t *Task) AssigneeLabel() string {
	if t.AssignedName == "" {
		return "Unassigned"
	}
	return t.AssignedName
}

// IsAssignedTo reports whether the task is assigned to the given user
func (t *Task) IsAssignedTo(userID int) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// CreateTaskRequest is the body of POST /todos
type CreateTaskRequest struct {
	Title      string `json:"title"`
	AssignedTo int    `json:"assigned_to"`
}

// UpdateTaskRequest is the body of PUT /todos/{id}
// Fields with pointers are optional - nil means don't send.
// There is deliberately no assignee name here: it is presentation only.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Bool returns a pointer to b, handy for building UpdateTaskRequest literals
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}
