package comment

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/models"
	commentservice "github.com/thenoetrevino/todolink/internal/services/comment"
)

// ListCmd returns the comment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a task's comment thread (admin only)",
		Long: `Show the comments on a task.

Only admins can read comment threads. Other roles can still post; see
"todolink comment post".

Examples:
  todolink comment list --task=3
  todolink comment list --task=3 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runList),
			handler.CommandConfig{Auth: models.AuthLogin},
			func(cmd *cobra.Command) error {
				_, err := handler.NewFlagParser(cmd).ParseTaskID("task")
				return err
			}),
	}

	cmd.Flags().Int("task", 0, "Task ID (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	dialog := &threadDialog{}
	viewer := args.CLI.App.NewCommentViewer(dialog)
	defer viewer.Close()

	if err := viewer.Open(ctx, args.GetInt("task", 0)); err != nil {
		return nil, err
	}
	if dialog.notice == commentservice.NoticePermissionDenied {
		return nil, fmt.Errorf("%s: %w", dialog.notice, models.ErrPermissionDenied)
	}
	return newThreadResult(dialog, false), nil
}
