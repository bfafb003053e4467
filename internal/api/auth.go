package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/todolink/internal/models"
)

// Signup creates an account. No identity header is sent.
func (c *Client) Signup(ctx context.Context, creds models.Credentials) (*models.SignupResult, error) {
	var result models.SignupResult
	empty, err := c.do(ctx, request{
		op:     "signup",
		method: http.MethodPost,
		path:   "signup",
		body:   creds,
	}, &result)
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, &models.NetworkError{Op: "signup", Err: errEmptyAuthResponse}
	}
	return &result, nil
}

// Login verifies credentials. No identity header is sent.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	var result models.LoginResult
	empty, err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "login",
		body:   creds,
	}, &result)
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, &models.NetworkError{Op: "login", Err: errEmptyAuthResponse}
	}
	return &result, nil
}
