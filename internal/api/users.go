package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/todolink/internal/models"
)

// ListUsers returns all users. A null body yields an empty slice.
func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	if _, err := c.do(ctx, request{
		op:       "list users",
		method:   http.MethodGet,
		path:     "users",
		identity: true,
	}, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}
