package tui

import (
	"errors"

	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/services/comment"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
)

// describeError turns an operation error into a one-line notification
func describeError(err error) string {
	var (
		valErr  *models.ValidationError
		authErr *models.AuthenticationError
		netErr  *models.NetworkError
	)

	switch {
	case errors.As(err, &valErr):
		return valErr.Message
	case errors.As(err, &authErr) && !errors.As(err, &netErr):
		if authErr.Mode == models.AuthSignup {
			return "Signup failed: that username may already be taken"
		}
		return "Login failed: check your username and password"
	case errors.As(err, &netErr):
		return "Could not reach the server"
	case errors.Is(err, models.ErrPermissionDenied):
		return "Permission denied"
	case errors.Is(err, models.ErrNotFound):
		return "Task no longer exists"
	case errors.Is(err, models.ErrNoSession):
		return "You are signed out"
	case errors.Is(err, models.ErrAlreadyAuthenticated):
		return "Already signed in: log out first"
	case errors.Is(err, tasklist.ErrDeleteCancelled):
		return "Delete cancelled"
	case errors.Is(err, comment.ErrNoActiveThread):
		return "No comment thread is open"
	default:
		return err.Error()
	}
}
