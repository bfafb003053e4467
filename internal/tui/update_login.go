package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

func (m Model) handleLoginMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.LoginForm.Busy() {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		return m, m.LoginForm.FocusNext()
	case m.Config.KeyMappings.SwitchAuthMode:
		m.LoginForm.ToggleMode()
		return m, nil
	case "enter":
		if !m.LoginForm.OnPassword() {
			return m, m.LoginForm.FocusNext()
		}
		return m.submitLogin()
	}

	return m, m.LoginForm.Update(msg)
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	username, password := m.LoginForm.Credentials()
	m.LoginForm.SetBusy(true)
	return m, m.authenticateCmd(username, password, m.LoginForm.Mode())
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.LoginForm.SetBusy(false)
	if msg.err != nil {
		slog.Warn("authentication failed", "mode", m.LoginForm.Mode(), "error", msg.err)
		m.NotificationState.Add(state.LevelError, describeError(msg.err))
		m.LoginForm.Password.Reset()
		return m, nil
	}

	verb := "Logged in"
	if m.LoginForm.Mode() == models.AuthSignup {
		verb = "Signed up"
	}
	m.NotificationState.Add(state.LevelInfo, verb+" as "+msg.session.Username)

	m.LoginForm.Reset()
	m.TaskState.Reset()
	m.UIState.ResetSelection()
	m.UIState.SetMode(state.NormalMode)
	return m, m.refreshCmd()
}
