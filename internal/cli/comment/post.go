package comment

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/models"
)

// PostCmd returns the comment post subcommand
func PostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Add a comment to a task",
		Long: `Add a comment to a task. Markdown is rendered when the thread is shown.

Admins see the updated thread afterwards; other roles get a confirmation.

Examples:
  todolink comment post --task=3 --message="Picked this up"
  todolink comment post --task=3 --message="Blocked on **review**" --json
`,
		RunE: handler.Command(handler.HandlerFunc(runPost),
			handler.CommandConfig{Auth: models.AuthLogin},
			func(cmd *cobra.Command) error {
				if _, err := handler.NewFlagParser(cmd).ParseTaskID("task"); err != nil {
					return err
				}
				message, _ := cmd.Flags().GetString("message")
				if strings.TrimSpace(message) == "" {
					return &models.ValidationError{Field: "content", Message: "comment cannot be empty"}
				}
				return nil
			}),
	}

	cmd.Flags().Int("task", 0, "Task ID (required)")
	cmd.Flags().String("message", "", "Comment text (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPost(ctx context.Context, args *handler.Arguments) (any, error) {
	dialog := &threadDialog{}
	viewer := args.CLI.App.NewCommentViewer(dialog)
	defer viewer.Close()

	if err := viewer.Open(ctx, args.GetInt("task", 0)); err != nil {
		return nil, err
	}
	if err := viewer.Post(ctx, args.GetString("message", "")); err != nil {
		return nil, err
	}
	return newThreadResult(dialog, true), nil
}
