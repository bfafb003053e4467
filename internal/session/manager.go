// Package session holds the currently authenticated identity and derives capability flags from it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/todolink/internal/models"
)

// Capability is an advisory UX gate derived from the session role.
// The server remains the source of truth for every permission.
type Capability string

const (
	// CapViewAllComments allows listing a task's comment thread
	CapViewAllComments Capability = "viewAllComments"
	// CapManageAssignment allows creating tasks and choosing their assignee
	CapManageAssignment Capability = "manageAssignment"
)

// Authenticator is the subset of the API client the manager needs
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	Signup(ctx context.Context, creds models.Credentials) (*models.SignupResult, error)
}

// Manager holds at most one Session. It is safe for concurrent use.
//
// States are Unauthenticated and Authenticated. Authenticate moves to
// Authenticated; Logout moves back. Authenticating while a session is active
// fails with models.ErrAlreadyAuthenticated.
type Manager struct {
	auth Authenticator

	mu      sync.RWMutex
	current *models.Session
}

// NewManager creates a manager in the Unauthenticated state
func NewManager(auth Authenticator) *Manager {
	return &Manager{auth: auth}
}

// Authenticate logs in or signs up and stores the resulting session.
func (m *Manager) Authenticate(ctx context.Context, username, password string, mode models.AuthMode) (models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Session{}, &models.ValidationError{Field: "username", Message: "username cannot be empty"}
	}
	if password == "" {
		return models.Session{}, &models.ValidationError{Field: "password", Message: "password cannot be empty"}
	}

	if _, ok := m.Current(); ok {
		return models.Session{}, models.ErrAlreadyAuthenticated
	}

	creds := models.Credentials{Username: username, Password: password}

	var sess models.Session
	switch mode {
	case models.AuthSignup:
		result, err := m.auth.Signup(ctx, creds)
		if err != nil {
			return models.Session{}, authError(mode, err)
		}
		sess = models.Session{UserID: result.ID, Username: username, Role: models.ParseRole(string(result.Role))}
	case models.AuthLogin, "":
		mode = models.AuthLogin
		result, err := m.auth.Login(ctx, creds)
		if err != nil {
			return models.Session{}, authError(mode, err)
		}
		name := result.Username
		if name == "" {
			name = username
		}
		sess = models.Session{UserID: result.ID, Username: name, Role: models.ParseRole(string(result.Role))}
	default:
		return models.Session{}, &models.ValidationError{Field: "mode", Message: "mode must be login or signup"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// A concurrent Authenticate may have won the race while we were on the network
	if m.current != nil {
		return models.Session{}, models.ErrAlreadyAuthenticated
	}
	m.current = &sess

	slog.Info("authenticated", "mode", mode, "user_id", sess.UserID, "username", sess.Username, "role", sess.Role)
	return sess, nil
}

// Current returns the active session, if any
func (m *Manager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.Session{}, false
	}
	return *m.current, true
}

// UserID implements api.IdentitySource
func (m *Manager) UserID() (int, bool) {
	sess, ok := m.Current()
	return sess.UserID, ok
}

// IsAuthenticated reports whether a session is active
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// Logout clears the session. Nothing is sent to the server.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		slog.Info("logged out", "user_id", m.current.UserID)
	}
	m.current = nil
}

// HasCapability is true iff a session is active and its role is admin
func (m *Manager) HasCapability(capability Capability) bool {
	sess, ok := m.Current()
	if !ok {
		return false
	}
	switch capability {
	case CapViewAllComments, CapManageAssignment:
		return sess.Role.IsAdmin()
	default:
		return false
	}
}

// authError wraps a failed login/signup. Cancellation passes through untouched.
func authError(mode models.AuthMode, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &models.AuthenticationError{Mode: mode, Err: err}
}
