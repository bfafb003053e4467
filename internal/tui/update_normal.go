package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/session"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	next, cmd, _ := m.dispatch(msg)
	return next, cmd
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleNextTask() (tea.Model, tea.Cmd) {
	m.UIState.MoveSelection(1, m.TaskState.Len())
	return m, nil
}

func (m Model) handlePrevTask() (tea.Model, tea.Cmd) {
	m.UIState.MoveSelection(-1, m.TaskState.Len())
	return m, nil
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	return m, m.refreshCmd()
}

// handleAddTask opens the create form. The gate is advisory; the server decides.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if !m.App.Sessions.HasCapability(session.CapManageAssignment) {
		m.NotificationState.Add(state.LevelWarning, "Only admins can create tasks")
		return m, nil
	}

	m.UIState.SetMode(state.CreateTaskMode)
	return m, tea.Batch(m.CreateForm.Open(), m.loadUsersCmd())
}

func (m Model) handleToggleTask() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}
	return m, m.toggleTaskCmd(*task)
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}
	m.pendingDelete = task
	m.UIState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

func (m Model) handleViewComments() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}

	m.UIState.SetMode(state.CommentMode)
	m.CommentState.Open(task.ID)
	m.commentInput.Reset()
	return m, tea.Batch(m.commentInput.Focus(), m.openCommentsCmd(task.ID))
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	m.App.Sessions.Logout()
	slog.Info("logged out from tui")

	closeThread := m.closeCommentsCmd()
	m.bindCollaborators()

	m.TaskState.Reset()
	m.CommentState.Close()
	m.UIState.ResetSelection()
	m.UIState.SetMode(state.LoginMode)
	m.NotificationState.Add(state.LevelInfo, "Logged out")
	return m, closeThread
}

func (m Model) handleTaskMutated(msg taskMutatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("task operation failed", "action", msg.action, "error", msg.err)
		m.NotificationState.Add(state.LevelError, describeError(msg.err))
		return m, nil
	}

	if m.UIState.Mode() == state.CreateTaskMode && msg.action == "created" {
		m.CreateForm.Close()
		m.UIState.SetMode(state.NormalMode)
	}
	m.NotificationState.Add(state.LevelInfo, "Task "+msg.action)
	return m, nil
}
