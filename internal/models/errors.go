package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSession is returned when an identity-scoped request is attempted without a session
	ErrNoSession = errors.New("no active session")

	// ErrAlreadyAuthenticated is returned when authenticating while a session is active.
	// Re-authentication requires a logout first.
	ErrAlreadyAuthenticated = errors.New("already authenticated: log out first")

	// ErrPermissionDenied is matched by a 403 HTTPStatusError
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is matched by a 404 HTTPStatusError
	ErrNotFound = errors.New("not found")
)

// NetworkError is a transport failure: the request never produced a usable response
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-2xx response from the server
type HTTPStatusError struct {
	Op   string
	Code int
	Body string
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: server returned %d", e.Op, e.Code)
}

// Is lets errors.Is(err, ErrPermissionDenied) and errors.Is(err, ErrNotFound) match by status code
func (e *HTTPStatusError) Is(target error) bool {
	switch target {
	case ErrPermissionDenied:
		return e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// ValidationError is a local check that failed before any request was issued
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthMode selects the authentication endpoint
type AuthMode string

const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// AuthenticationError is a failed login or signup
type AuthenticationError struct {
	Mode AuthMode
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Mode, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode returns the HTTP status code carried by err, or 0
func StatusCode(err error) int {
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
