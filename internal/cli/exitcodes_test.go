package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todolink/internal/models"
)

func TestExitCode(t *testing.T) {
	network := &models.NetworkError{Op: "list tasks", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", &models.ValidationError{Field: "title", Message: "title is required"}, ExitValidation},
		{"rejected login", &models.AuthenticationError{Mode: models.AuthLogin, Err: &models.HTTPStatusError{Code: 401}}, ExitAuth},
		{"login unreachable", &models.AuthenticationError{Mode: models.AuthLogin, Err: network}, ExitNetwork},
		{"no session", fmt.Errorf("list: %w", models.ErrNoSession), ExitAuth},
		{"already authenticated", models.ErrAlreadyAuthenticated, ExitAuth},
		{"forbidden", &models.HTTPStatusError{Op: "list comments", Code: 403}, ExitPermission},
		{"not found", &models.HTTPStatusError{Op: "update task", Code: 404}, ExitNotFound},
		{"network", fmt.Errorf("refresh: %w", network), ExitNetwork},
		{"server error", &models.HTTPStatusError{Op: "create task", Code: 500}, ExitError},
		{"other", errors.New("boom"), ExitError},
		{"already classified", &ExitCodeError{Code: ExitUsage, Err: errors.New("bad flag")}, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestFail_ReportsAndWraps(t *testing.T) {
	var out, errOut bytes.Buffer
	formatter := &OutputFormatter{Out: &out, Err: &errOut}
	cause := &models.HTTPStatusError{Op: "list comments", Code: 403}

	err := Fail(formatter, cause)

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitPermission, exitErr.Code)
	assert.ErrorIs(t, err, models.ErrPermissionDenied, "the cause stays reachable")
	assert.Contains(t, errOut.String(), "Only admins can do this")
	assert.Empty(t, out.String())
}

func TestFail_JSON(t *testing.T) {
	var out bytes.Buffer
	formatter := &OutputFormatter{JSON: true, Out: &out, Err: &bytes.Buffer{}}

	err := Fail(formatter, &models.ValidationError{Field: "title", Message: "title is required"})

	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Contains(t, out.String(), `"code":"VALIDATION_ERROR"`)
}

func TestUsageError(t *testing.T) {
	var errOut bytes.Buffer
	formatter := &OutputFormatter{Out: &bytes.Buffer{}, Err: &errOut}

	err := UsageError(formatter, errors.New("--done and --undone are mutually exclusive"))

	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut.String(), "mutually exclusive")
}
