package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/models"
)

// NewTextInput creates a single-line input with a steady cursor.
func NewTextInput(placeholder string, charLimit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit

	styles := ti.Styles()
	styles.Cursor.Blink = false
	ti.SetStyles(styles)
	return ti
}

// LoginFormState holds the credential inputs of the login screen.
type LoginFormState struct {
	Username textinput.Model
	Password textinput.Model

	mode  models.AuthMode
	focus int
	busy  bool
}

// NewLoginFormState creates the login form with the username field focused.
func NewLoginFormState() *LoginFormState {
	username := NewTextInput("username", 64)
	username.Focus()

	password := NewTextInput("password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LoginFormState{
		Username: username,
		Password: password,
		mode:     models.AuthLogin,
	}
}

// Mode returns whether submitting logs in or signs up.
func (s *LoginFormState) Mode() models.AuthMode {
	return s.mode
}

// ToggleMode switches between login and signup.
func (s *LoginFormState) ToggleMode() {
	if s.mode == models.AuthLogin {
		s.mode = models.AuthSignup
		return
	}
	s.mode = models.AuthLogin
}

// FocusNext moves focus between the two inputs.
func (s *LoginFormState) FocusNext() tea.Cmd {
	s.focus = (s.focus + 1) % 2
	if s.focus == 0 {
		s.Password.Blur()
		return s.Username.Focus()
	}
	s.Username.Blur()
	return s.Password.Focus()
}

// OnPassword reports whether the password input has focus.
func (s *LoginFormState) OnPassword() bool {
	return s.focus == 1
}

// Update forwards a message to the focused input.
func (s *LoginFormState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == 0 {
		s.Username, cmd = s.Username.Update(msg)
	} else {
		s.Password, cmd = s.Password.Update(msg)
	}
	return cmd
}

// Credentials returns the trimmed username and the raw password.
func (s *LoginFormState) Credentials() (string, string) {
	return strings.TrimSpace(s.Username.Value()), s.Password.Value()
}

// SetBusy marks an authentication request as in flight.
func (s *LoginFormState) SetBusy(busy bool) {
	s.busy = busy
}

// Busy reports whether an authentication request is in flight.
func (s *LoginFormState) Busy() bool {
	return s.busy
}

// Reset clears both inputs and returns to login mode.
func (s *LoginFormState) Reset() {
	s.Username.Reset()
	s.Password.Reset()
	s.mode = models.AuthLogin
	s.busy = false
	s.focus = 1
	s.FocusNext()
}

// CreateFormState holds the admin create-task form.
type CreateFormState struct {
	Title textinput.Model

	users    []*models.User
	assignee int
}

// NewCreateFormState creates an empty create form with no assignee chosen.
func NewCreateFormState() *CreateFormState {
	title := NewTextInput("task title", 200)
	return &CreateFormState{Title: title, assignee: -1}
}

// SetUsers replaces the assignee candidates. The selection is kept when the user is still present.
func (s *CreateFormState) SetUsers(users []*models.User) {
	current := s.Assignee()
	s.users = users
	s.assignee = -1
	if current == nil {
		return
	}
	for i, u := range users {
		if u.ID == current.ID {
			s.assignee = i
			return
		}
	}
}

// Users returns the assignee candidates.
func (s *CreateFormState) Users() []*models.User {
	return s.users
}

// CycleAssignee moves the assignee choice by delta, wrapping around.
func (s *CreateFormState) CycleAssignee(delta int) {
	n := len(s.users)
	if n == 0 {
		return
	}
	if s.assignee < 0 {
		if delta < 0 {
			s.assignee = n - 1
		} else {
			s.assignee = 0
		}
		return
	}
	s.assignee = ((s.assignee+delta)%n + n) % n
}

// Assignee returns the chosen user, nil when none.
func (s *CreateFormState) Assignee() *models.User {
	if s.assignee < 0 || s.assignee >= len(s.users) {
		return nil
	}
	return s.users[s.assignee]
}

// Request builds the create payload from the form values.
func (s *CreateFormState) Request() models.CreateTaskRequest {
	req := models.CreateTaskRequest{Title: s.Title.Value()}
	if u := s.Assignee(); u != nil {
		req.AssignedTo = u.ID
	}
	return req
}

// Open focuses the title input and clears any previous values.
func (s *CreateFormState) Open() tea.Cmd {
	s.Title.Reset()
	s.assignee = -1
	return s.Title.Focus()
}

// Close blurs the title input.
func (s *CreateFormState) Close() {
	s.Title.Blur()
}
