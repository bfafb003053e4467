package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
)

// Every API call runs inside a command so Update never blocks on the network.

// scoped tags the result of fn with the current session generation
func (m Model) scoped(fn func() tea.Msg) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		return scopedMsg{gen: gen, msg: fn()}
	}
}

func (m Model) authenticateCmd(username, password string, mode models.AuthMode) tea.Cmd {
	ctx, sessions := m.ctx, m.App.Sessions
	return func() tea.Msg {
		sess, err := sessions.Authenticate(ctx, username, password, mode)
		return authDoneMsg{session: sess, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, tasks := m.ctx, m.tasks
	return m.scoped(func() tea.Msg {
		_, err := tasks.Refresh(ctx)
		return refreshDoneMsg{err: err}
	})
}

func (m Model) loadUsersCmd() tea.Cmd {
	ctx, client := m.ctx, m.App.Client
	return m.scoped(func() tea.Msg {
		users, err := client.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	})
}

func (m Model) createTaskCmd(req models.CreateTaskRequest) tea.Cmd {
	ctx, tasks := m.ctx, m.tasks
	return m.scoped(func() tea.Msg {
		return taskMutatedMsg{action: "created", err: tasks.Create(ctx, req)}
	})
}

func (m Model) toggleTaskCmd(task models.Task) tea.Cmd {
	ctx, tasks := m.ctx, m.tasks
	action := "marked done"
	if task.Completed {
		action = "marked not done"
	}
	return m.scoped(func() tea.Msg {
		return taskMutatedMsg{action: action, err: tasks.Toggle(ctx, &task)}
	})
}

// deleteTaskCmd runs after the confirmation dialog was accepted
func (m Model) deleteTaskCmd(taskID int) tea.Cmd {
	ctx, tasks := m.ctx, m.tasks
	return m.scoped(func() tea.Msg {
		return taskMutatedMsg{action: "deleted", err: tasks.Delete(ctx, taskID, tasklist.Approved)}
	})
}

func (m Model) openCommentsCmd(taskID int) tea.Cmd {
	ctx, viewer := m.ctx, m.viewer
	return m.scoped(func() tea.Msg {
		return commentOpenDoneMsg{err: viewer.Open(ctx, taskID)}
	})
}

func (m Model) postCommentCmd(content string) tea.Cmd {
	ctx, viewer := m.ctx, m.viewer
	return m.scoped(func() tea.Msg {
		return commentPostDoneMsg{err: viewer.Post(ctx, content)}
	})
}

func (m Model) closeCommentsCmd() tea.Cmd {
	viewer := m.viewer
	return func() tea.Msg {
		viewer.Close()
		slog.Debug("comment dialog closed")
		return nil
	}
}
