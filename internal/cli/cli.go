package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/app"
	"github.com/thenoetrevino/todolink/internal/cli/prompt"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/user"
)

// Persistent flag names shared by every command
const (
	FlagAPIURL   = "api-url"
	FlagUsername = "username"
	FlagPassword = "password"
	FlagVerbose  = "verbose"

	envUsername = "TODOLINK_USERNAME"
	envPassword = "TODOLINK_PASSWORD"
)

// CLI represents the CLI application context
type CLI struct {
	App      *app.App // Application container with services
	Prompter prompt.Prompter
}

// Deps lets callers (tests, the TUI launcher) hand commands a prebuilt app
type Deps struct {
	App      *app.App
	Prompter prompt.Prompter
}

type depsKey struct{}

// WithDeps attaches deps to ctx for FromCommand to pick up
func WithDeps(ctx context.Context, deps Deps) context.Context {
	return context.WithValue(ctx, depsKey{}, deps)
}

// AddPersistentFlags registers the connection and credential flags on root
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().String(FlagAPIURL, "", "API base URL (overrides config and TODOLINK_API_URL)")
	root.PersistentFlags().String(FlagUsername, "", "Username (or TODOLINK_USERNAME)")
	root.PersistentFlags().String(FlagPassword, "", "Password (or TODOLINK_PASSWORD; prompted when omitted)")
	root.PersistentFlags().Bool(FlagVerbose, false, "Mirror debug logs to stderr")
}

// FromCommand returns the CLI for cmd, using injected deps when present
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx != nil {
		if deps, ok := ctx.Value(depsKey{}).(Deps); ok && deps.App != nil {
			p := deps.Prompter
			if p == nil {
				p = prompt.NonInteractive{}
			}
			return &CLI{App: deps.App, Prompter: p}, nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var opts []app.Option
	if apiURL := flagString(cmd, FlagAPIURL); apiURL != "" {
		opts = append(opts, app.WithBaseURL(apiURL))
	}

	application, err := app.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application, Prompter: prompt.New()}, nil
}

// Credentials resolves credentials from flags, then the environment, then prompts
func (c *CLI) Credentials(cmd *cobra.Command) (models.Credentials, error) {
	username := firstNonEmpty(flagString(cmd, FlagUsername), os.Getenv(envUsername))
	if username == "" {
		var err error
		username, err = c.Prompter.Username(user.SuggestedUsername())
		if err != nil {
			return models.Credentials{}, &models.ValidationError{Field: "username", Message: "username is required: " + err.Error()}
		}
	}

	password := firstNonEmpty(flagString(cmd, FlagPassword), os.Getenv(envPassword))
	if password == "" {
		var err error
		password, err = c.Prompter.Password(username)
		if err != nil {
			return models.Credentials{}, &models.ValidationError{Field: "password", Message: "password is required: " + err.Error()}
		}
	}

	return models.Credentials{Username: strings.TrimSpace(username), Password: password}, nil
}

// HasCredentials reports whether both username and password came from flags or the environment
func HasCredentials(cmd *cobra.Command) bool {
	username := firstNonEmpty(flagString(cmd, FlagUsername), os.Getenv(envUsername))
	password := firstNonEmpty(flagString(cmd, FlagPassword), os.Getenv(envPassword))
	return username != "" && password != ""
}

// Authenticate establishes the per-invocation session. Sessions are never persisted,
// so every command that needs one authenticates first.
func (c *CLI) Authenticate(cmd *cobra.Command, mode models.AuthMode) (models.Session, error) {
	creds, err := c.Credentials(cmd)
	if err != nil {
		return models.Session{}, err
	}
	return c.App.Sessions.Authenticate(cmd.Context(), creds.Username, creds.Password, mode)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// NewFormatter builds the output formatter from the --json/--quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// flagString reads a string flag, local or inherited, returning "" when it is not defined
func flagString(cmd *cobra.Command, name string) string {
	f := cmd.Flag(name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Value.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
