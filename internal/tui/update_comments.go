package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

func (m Model) handleCommentMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeCommentDialog()
		return m, m.closeCommentsCmd()
	case "enter":
		m.NotificationState.Clear()
		return m, m.postCommentCmd(m.commentInput.Value())
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

// closeCommentDialog returns to the task list. The input keeps its text until the viewer clears it.
func (m Model) closeCommentDialog() Model {
	m.CommentState.Close()
	m.commentInput.Blur()
	if m.UIState.Mode() == state.CommentMode {
		m.UIState.SetMode(state.NormalMode)
	}
	return m
}
