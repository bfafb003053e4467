package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

// handleCreateTaskMode drives the admin create form.
// tab and shift+tab cycle the assignee; everything else edits the title.
func (m Model) handleCreateTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CreateForm.Close()
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	case "tab":
		m.CreateForm.CycleAssignee(1)
		return m, nil
	case "shift+tab":
		m.CreateForm.CycleAssignee(-1)
		return m, nil
	case "enter", m.Config.KeyMappings.SaveForm:
		m.NotificationState.Clear()
		return m, m.createTaskCmd(m.CreateForm.Request())
	}

	var cmd tea.Cmd
	m.CreateForm.Title, cmd = m.CreateForm.Title.Update(msg)
	return m, cmd
}
