package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/todolink/internal/models"
)

// ListComments returns a task's comment thread.
// A 403 comes back as an error matching models.ErrPermissionDenied.
func (c *Client) ListComments(ctx context.Context, taskID int) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	if _, err := c.do(ctx, request{
		op:       "list comments",
		method:   http.MethodGet,
		path:     todoPath(taskID) + "/comments",
		identity: true,
	}, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// PostComment adds a comment to a task
func (c *Client) PostComment(ctx context.Context, taskID int, content string) (*models.Comment, error) {
	var comment models.Comment
	empty, err := c.do(ctx, request{
		op:       "post comment",
		method:   http.MethodPost,
		path:     todoPath(taskID) + "/comments",
		body:     models.NewComment{Content: content},
		identity: true,
	}, &comment)
	if err != nil || empty {
		return nil, err
	}
	return &comment, nil
}
