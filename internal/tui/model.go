package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/app"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/services/comment"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
	"github.com/thenoetrevino/todolink/internal/tui/components"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	// Context for cancellation and timeouts
	ctx context.Context

	App    *app.App
	Config *config.Config

	// Synchronizer and viewer report back through the outbox, tagged with generation
	tasks      tasklist.Service
	viewer     *comment.Viewer
	outbox     *outbox
	generation int

	keys []keyAction

	// State managers
	UIState           *state.UIState
	NotificationState *state.NotificationState
	TaskState         *state.TaskState
	CommentState      *state.CommentState
	LoginForm         *state.LoginFormState
	CreateForm        *state.CreateFormState

	commentInput  textinput.Model
	pendingDelete *models.Task
}

// InitialModel creates and initializes the TUI model
func InitialModel(ctx context.Context, a *app.App) Model {
	components.InitStyles(a.Config.ColorScheme)

	out := &outbox{}

	m := Model{
		ctx:               ctx,
		App:               a,
		Config:            a.Config,
		outbox:            out,
		keys:              newKeyActions(a.Config.KeyMappings),
		UIState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		TaskState:         state.NewTaskState(),
		CommentState:      state.NewCommentState(),
		LoginForm:         state.NewLoginFormState(),
		CreateForm:        state.NewCreateFormState(),
		commentInput:      state.NewTextInput("write a comment", 2000),
	}
	m.bindCollaborators()

	// Credentials given on the command line skip the login screen
	if a.Sessions.IsAuthenticated() {
		m.UIState.SetMode(state.NormalMode)
	}
	return m
}

// Init starts the first refresh when already signed in
func (m Model) Init() tea.Cmd {
	if m.UIState.Mode() == state.LoginMode {
		return nil
	}
	return m.refreshCmd()
}

// Run starts the interactive client and blocks until it exits
func Run(ctx context.Context, a *app.App) error {
	m := InitialModel(ctx, a)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	m.outbox.attach(p.Send)
	_, err := p.Run()
	return err
}

// bindCollaborators starts a new session generation with its own synchronizer and viewer.
// Messages tagged with an older generation are dropped by Update.
func (m *Model) bindCollaborators() {
	m.generation++
	m.tasks = m.App.NewTaskList(taskRenderer{out: m.outbox, gen: m.generation})
	m.viewer = m.App.NewCommentViewer(commentDialog{out: m.outbox, gen: m.generation})
}

// selectedTask returns the highlighted task, nil when the list is empty
func (m Model) selectedTask() *models.Task {
	return m.TaskState.At(m.UIState.SelectedTask())
}

// currentUser returns the signed-in username, empty when signed out
func (m Model) currentUser() string {
	sess, ok := m.App.Sessions.Current()
	if !ok {
		return ""
	}
	return sess.Username + " (" + string(sess.Role) + ")"
}
