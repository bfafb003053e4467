package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/services/comment"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model and command
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	case scopedMsg:
		if msg.gen != m.generation {
			slog.Debug("dropped output from an earlier session", "gen", msg.gen, "current", m.generation)
			return m, nil
		}
		if msg.msg == nil {
			return m, nil
		}
		return m.Update(msg.msg)

	case authDoneMsg:
		return m.handleAuthDone(msg)
	case tasksRenderedMsg:
		m.TaskState.Replace(msg.tasks)
		m.UIState.ClampSelection(m.TaskState.Len())
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			slog.Error("refresh failed", "error", msg.err)
			m.NotificationState.Add(state.LevelError, describeError(msg.err))
		}
		return m, nil
	case usersLoadedMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, describeError(msg.err))
			return m, nil
		}
		m.CreateForm.SetUsers(msg.users)
		return m, nil
	case taskMutatedMsg:
		return m.handleTaskMutated(msg)

	case commentOpenedMsg:
		if m.UIState.Mode() == state.CommentMode {
			m.CommentState.Open(msg.taskID)
		}
		return m, nil
	case commentLoadingMsg:
		if m.CommentState.IsOpen() {
			m.CommentState.SetLoading()
		}
		return m, nil
	case commentsRenderedMsg:
		if m.CommentState.IsOpen() {
			m.CommentState.SetComments(msg.comments)
		}
		return m, nil
	case commentNoticeMsg:
		if msg.notice == comment.NoticePosted {
			m.NotificationState.Add(state.LevelInfo, string(msg.notice))
			return m, nil
		}
		if m.CommentState.IsOpen() {
			m.CommentState.SetNotice(string(msg.notice))
		}
		return m, nil
	case commentInputClearedMsg:
		m.commentInput.Reset()
		return m, nil
	case commentClosedMsg:
		return m.closeCommentDialog(), nil
	case commentOpenDoneMsg:
		if msg.err != nil {
			slog.Error("failed to open comments", "error", msg.err)
			m.NotificationState.Add(state.LevelError, describeError(msg.err))
		}
		return m, nil
	case commentPostDoneMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, describeError(msg.err))
		}
		return m, nil
	}

	return m.forwardToInput(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UIState.Mode() {
	case state.LoginMode:
		return m.handleLoginMode(msg)
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.CreateTaskMode:
		return m.handleCreateTaskMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.CommentMode:
		return m.handleCommentMode(msg)
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// forwardToInput hands non-key messages such as cursor blinks to the focused input
func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.UIState.Mode() {
	case state.LoginMode:
		cmd = m.LoginForm.Update(msg)
	case state.CreateTaskMode:
		m.CreateForm.Title, cmd = m.CreateForm.Title.Update(msg)
	case state.CommentMode:
		m.commentInput, cmd = m.commentInput.Update(msg)
	}
	return m, cmd
}
