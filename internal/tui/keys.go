package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/config"
)

// keyAction binds a key to a task list handler
type keyAction struct {
	binding key.Binding
	handle  func(m Model) (tea.Model, tea.Cmd)
}

// newKeyActions builds the task list dispatch table from the configured mappings.
// Order matters for the help screen only.
func newKeyActions(km config.KeyMappings) []keyAction {
	bind := func(help string, keys ...string) key.Binding {
		for i := range keys {
			keys[i] = normalizeKey(keys[i])
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}

	return []keyAction{
		{bind("next task", km.NextTask, "down"), Model.handleNextTask},
		{bind("previous task", km.PrevTask, "up"), Model.handlePrevTask},
		{bind("refresh", km.Refresh), Model.handleRefresh},
		{bind("add task (admin)", km.AddTask), Model.handleAddTask},
		{bind("toggle done", km.ToggleTask), Model.handleToggleTask},
		{bind("delete task", km.DeleteTask), Model.handleDeleteTask},
		{bind("comments", km.ViewComments), Model.handleViewComments},
		{bind("log out", km.Logout), Model.handleLogout},
		{bind("help", km.ShowHelp), Model.handleShowHelp},
		{bind("quit", km.Quit, "ctrl+c"), Model.handleQuit},
	}
}

// dispatch runs the first handler whose binding matches msg
func (m Model) dispatch(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	for _, action := range m.keys {
		if key.Matches(msg, action.binding) {
			next, cmd := action.handle(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// normalizeKey maps a literal space to the name key presses report for it
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
