// Package users holds the user listing command used to pick assignees
package users

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/cli/styles"
	"github.com/thenoetrevino/todolink/internal/models"
)

// UsersCmd returns the users parent command
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts",
	}
	cmd.AddCommand(ListCmd())
	return cmd
}

type userList []*models.User

func (l userList) IDs() []int {
	ids := make([]int, len(l))
	for i, u := range l {
		ids[i] = u.ID
	}
	return ids
}

func (l userList) PrintHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No users found")
		return err
	}
	for _, u := range l {
		if _, err := fmt.Fprintf(w, "  %s\n", styles.RenderUserLine(u)); err != nil {
			return err
		}
	}
	return nil
}

// ListCmd returns the users list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users (candidate assignees)",
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			users, err := args.CLI.App.Client.ListUsers(ctx)
			if err != nil {
				return nil, err
			}
			return userList(users), nil
		}), handler.CommandConfig{Auth: models.AuthLogin}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}
