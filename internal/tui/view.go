package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/tui/components"
	"github.com/thenoetrevino/todolink/internal/tui/notifications"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

// View renders the current mode with notifications and the status bar underneath
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	var body string
	switch m.UIState.Mode() {
	case state.LoginMode:
		body = m.viewLogin()
	case state.CreateTaskMode:
		body = m.viewCreateForm()
	case state.DeleteConfirmMode:
		body = m.viewDeleteConfirm()
	case state.CommentMode:
		body = m.viewComments()
	case state.HelpMode:
		body = m.viewHelp()
	default:
		body = m.viewTaskList()
	}

	parts := []string{body}
	if m.NotificationState.HasAny() {
		parts = append(parts, notifications.RenderAll(m.NotificationState))
	}
	parts = append(parts, m.viewStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewLogin() string {
	title := "Log in"
	if m.LoginForm.Mode() == models.AuthSignup {
		title = "Sign up"
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("todolink: " + title))
	b.WriteString("\n\n")
	b.WriteString(m.LoginForm.Username.View())
	b.WriteString("\n")
	b.WriteString(m.LoginForm.Password.View())
	b.WriteString("\n\n")
	if m.LoginForm.Busy() {
		b.WriteString(components.SubtleStyle.Render("Authenticating..."))
	} else {
		hint := fmt.Sprintf("enter submit • tab switch field • %s login/signup • esc quit",
			m.Config.KeyMappings.SwitchAuthMode)
		b.WriteString(components.SubtleStyle.Render(hint))
	}
	return components.LoginBoxStyle.Render(b.String())
}

func (m Model) viewTaskList() string {
	var rows []string
	switch {
	case !m.TaskState.Loaded():
		rows = append(rows, components.SubtleStyle.Render("Loading..."))
	case m.TaskState.Len() == 0:
		rows = append(rows, components.SubtleStyle.Render("No tasks yet"))
	default:
		for i, task := range m.TaskState.Tasks() {
			rows = append(rows, components.RenderTaskRow(task, i == m.UIState.SelectedTask()))
		}
	}

	header := components.TitleStyle.Render("Tasks")
	list := components.ListBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, header, list)
}

func (m Model) viewCreateForm() string {
	assignee := "none (tab to choose)"
	if u := m.CreateForm.Assignee(); u != nil {
		assignee = u.Username
	} else if len(m.CreateForm.Users()) == 0 {
		assignee = "loading users..."
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("New task"))
	b.WriteString("\n\n")
	b.WriteString(m.CreateForm.Title.View())
	b.WriteString("\n")
	b.WriteString("Assign to: " + assignee)
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("enter/%s save • tab/shift+tab assignee • esc cancel",
		m.Config.KeyMappings.SaveForm)))
	return components.CreateInputBoxStyle.Render(b.String())
}

func (m Model) viewDeleteConfirm() string {
	title := ""
	if m.pendingDelete != nil {
		title = m.pendingDelete.Title
	}
	content := fmt.Sprintf("Delete %q?\n\n%s", title, components.SubtleStyle.Render("y delete • n cancel"))
	return components.DeleteConfirmBoxStyle.Render(content)
}

func (m Model) viewComments() string {
	title := fmt.Sprintf("#%d", m.CommentState.TaskID())
	for _, t := range m.TaskState.Tasks() {
		if t.ID == m.CommentState.TaskID() {
			title = t.Title
			break
		}
	}

	return components.RenderCommentDialog(components.CommentDialogProps{
		TaskTitle: title,
		Loading:   m.CommentState.Loading(),
		Comments:  m.CommentState.Comments(),
		Notice:    m.CommentState.Notice(),
		Input:     m.commentInput.View(),
		Width:     m.UIState.Width(),
	})
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, action := range m.keys {
		help := action.binding.Help()
		fmt.Fprintf(&b, "%-8s %s\n", help.Key, help.Desc)
	}
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("press any key to return"))
	return components.HelpBoxStyle.Render(b.String())
}

func (m Model) viewStatusBar() string {
	metrics := m.App.Client.Metrics()
	stats := m.tasks.Stats()
	return components.RenderStatusBar(components.StatusBarProps{
		Width:    m.UIState.Width(),
		Mode:     m.UIState.Mode().String(),
		User:     m.currentUser(),
		Tasks:    m.TaskState.Len(),
		Requests: metrics.GetRequests(),
		Failures: metrics.GetFailures(),
		Stale:    stats.StaleRenders,
	})
}
