package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todolink/internal/api"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/services/comment"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
	"github.com/thenoetrevino/todolink/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Sessions owns the authenticated identity for this process
	Sessions *session.Manager

	// Client attaches the session's user ID to every scoped request
	Client *api.Client

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	settings := &appConfig{}
	for _, opt := range opts {
		opt(settings)
	}
	if settings.logger == nil {
		settings.logger = slog.Default()
	}

	baseURL := cfg.API.BaseURL
	if settings.baseURL != "" {
		baseURL = settings.baseURL
	}

	clientOpts := []api.Option{api.WithLogger(settings.logger)}
	if settings.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(settings.httpClient))
	}
	if timeout := cfg.API.Timeout.Std(); timeout > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(timeout))
	}

	// The session manager authenticates through the unscoped client, and the
	// scoped client reads its identity back from the manager.
	base, err := api.NewClient(baseURL, nil, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	sessions := session.NewManager(base)

	return &App{
		Config:   cfg,
		Sessions: sessions,
		Client:   base.Scoped(sessions),
		logger:   settings.logger,
	}, nil
}

// NewTaskList creates the task list synchronizer rendering into renderer
func (a *App) NewTaskList(renderer tasklist.Renderer) tasklist.Service {
	return tasklist.NewService(a.Client, renderer)
}

// NewCommentViewer creates a comment thread viewer drawing into dialog
func (a *App) NewCommentViewer(dialog comment.Dialog) *comment.Viewer {
	return comment.NewViewer(a.Client, a.Sessions, dialog)
}

// Close performs cleanup of application resources.
// Sessions live only in memory, so closing forgets the current one.
func (a *App) Close() error {
	if a.Sessions.IsAuthenticated() {
		a.Sessions.Logout()
	}
	return nil
}
