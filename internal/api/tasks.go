package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/todolink/internal/models"
)

// ListTasks returns the task collection visible to the current session.
// A null or empty body yields an empty slice, never an error.
func (c *Client) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks := []*models.Task{}
	if _, err := c.do(ctx, request{
		op:       "list tasks",
		method:   http.MethodGet,
		path:     "todos",
		identity: true,
	}, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

// CreateTask creates a task. The returned task is nil when the server sends no body.
func (c *Client) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	empty, err := c.do(ctx, request{
		op:       "create task",
		method:   http.MethodPost,
		path:     "todos",
		body:     req,
		identity: true,
	}, &task)
	if err != nil || empty {
		return nil, err
	}
	return &task, nil
}

// UpdateTask sends the non-nil fields of req. The returned task is nil when the server sends no body.
func (c *Client) UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	empty, err := c.do(ctx, request{
		op:       "update task",
		method:   http.MethodPut,
		path:     todoPath(taskID),
		body:     req,
		identity: true,
	}, &task)
	if err != nil || empty {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task. Only the status code is inspected.
func (c *Client) DeleteTask(ctx context.Context, taskID int) error {
	_, err := c.do(ctx, request{
		op:       "delete task",
		method:   http.MethodDelete,
		path:     todoPath(taskID),
		identity: true,
	}, nil)
	return err
}
