package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		task := m.pendingDelete
		m.pendingDelete = nil
		m.UIState.SetMode(state.NormalMode)
		if task == nil {
			return m, nil
		}
		return m, m.deleteTaskCmd(task.ID)
	case "n", "N", "esc":
		m.pendingDelete = nil
		m.UIState.SetMode(state.NormalMode)
		m.NotificationState.Add(state.LevelInfo, "Delete cancelled")
		return m, nil
	}
	return m, nil
}
