package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/todolink/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected API status codes or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: the API answered 404 for a task or comment thread.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: blank titles, missing assignees, empty comments or credentials.
	ExitValidation = 5

	// ExitAuth indicates the credentials were rejected or no session could be established.
	ExitAuth = 6

	// ExitPermission indicates the API refused the operation for this role.
	ExitPermission = 7

	// ExitNetwork indicates the API could not be reached or answered with an undecodable body.
	ExitNetwork = 8
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported by the OutputFormatter.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// classify maps err to an exit code, an error code string and an optional suggestion
func classify(err error) (int, string, string) {
	var (
		validationErr *models.ValidationError
		authErr       *models.AuthenticationError
		networkErr    *models.NetworkError
		statusErr     *models.HTTPStatusError
	)

	switch {
	case errors.As(err, &validationErr):
		return ExitValidation, "VALIDATION_ERROR", ""
	case errors.As(err, &authErr):
		if errors.As(err, &networkErr) {
			return ExitNetwork, "NETWORK_ERROR", "Check that the API is running and --api-url is correct"
		}
		return ExitAuth, "AUTHENTICATION_FAILED", "Check your username and password"
	case errors.Is(err, models.ErrNoSession):
		return ExitAuth, "NO_SESSION", "Provide credentials with --username/--password or TODOLINK_USERNAME/TODOLINK_PASSWORD"
	case errors.Is(err, models.ErrAlreadyAuthenticated):
		return ExitAuth, "ALREADY_AUTHENTICATED", ""
	case errors.Is(err, models.ErrPermissionDenied):
		return ExitPermission, "PERMISSION_DENIED", "Only admins can do this"
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound, "NOT_FOUND", ""
	case errors.As(err, &networkErr):
		return ExitNetwork, "NETWORK_ERROR", "Check that the API is running and --api-url is correct"
	case errors.As(err, &statusErr):
		return ExitError, "API_ERROR", ""
	default:
		return ExitError, "ERROR", ""
	}
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _, _ := classify(err)
	return code
}

// Fail reports err through the formatter and returns it wrapped with its exit code
func Fail(formatter *OutputFormatter, err error) error {
	code, errCode, suggestion := classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError reports an invalid invocation
func UsageError(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}
