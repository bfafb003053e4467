// Package auth holds the login and signup commands
package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/cli/styles"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/session"
)

// sessionResult describes the session a command established
type sessionResult struct {
	UserID       int         `json:"user_id"`
	Username     string      `json:"username"`
	Role         models.Role `json:"role"`
	Capabilities []string    `json:"capabilities"`
	created      bool
}

func (r sessionResult) GetID() int {
	return r.UserID
}

func (r sessionResult) PrintHuman(w io.Writer) error {
	verb := "Logged in as"
	if r.created {
		verb = "Signed up as"
	}
	fmt.Fprintf(w, "✓ %s %s (#%d, %s)\n", verb, styles.TitleStyle.Render(r.Username), r.UserID, r.Role)
	if len(r.Capabilities) > 0 {
		fmt.Fprintf(w, "  %s %v\n", styles.LabelStyle.Render("Capabilities:"), r.Capabilities)
	}
	return nil
}

func describe(args *handler.Arguments, created bool) sessionResult {
	sessions := args.CLI.App.Sessions
	caps := []string{}
	for _, c := range []session.Capability{session.CapViewAllComments, session.CapManageAssignment} {
		if sessions.HasCapability(c) {
			caps = append(caps, string(c))
		}
	}
	return sessionResult{
		UserID:       args.Session.UserID,
		Username:     args.Session.Username,
		Role:         args.Session.Role,
		Capabilities: caps,
		created:      created,
	}
}

// LoginCmd returns the login command. Sessions are not persisted, so this only
// checks the credentials and reports the resulting role.
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show your role",
		Long: `Log in and show the session the API grants.

Sessions live only for one command, so every command logs in with
--username/--password, TODOLINK_USERNAME/TODOLINK_PASSWORD, or a prompt.

Examples:
  todolink login --username=alice
  TODOLINK_USERNAME=alice TODOLINK_PASSWORD=secret todolink login --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			return describe(args, false), nil
		}), handler.CommandConfig{Auth: models.AuthLogin}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user ID only)")

	return cmd
}

// SignupCmd returns the signup command
func SignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long: `Create an account. The first account on a fresh server becomes the admin.

Examples:
  todolink signup --username=alice
  todolink signup --username=alice --password=secret --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			return describe(args, true), nil
		}), handler.CommandConfig{Auth: models.AuthSignup}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user ID only)")

	return cmd
}
