package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/models"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip a task between done and not done",
		Long: `Flip a task's completion flag, or set it explicitly with --done/--undone.

Examples:
  todolink task toggle --id=3
  todolink task toggle --id=3 --done
  todolink task toggle --id=3 --undone --json
`,
		RunE: handler.Command(handler.HandlerFunc(runToggle),
			handler.CommandConfig{Auth: models.AuthLogin},
			parseToggleFlags),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().Bool("done", false, "Mark the task done")
	cmd.Flags().Bool("undone", false, "Mark the task not done")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func parseToggleFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseTaskID("id"); err != nil {
		return err
	}
	return parser.RequireExclusive("done", "undone")
}

func runToggle(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)
	tasks := args.CLI.App.NewTaskList(nil)

	var err error
	switch {
	case args.GetBool("done"):
		err = tasks.ToggleCompletion(ctx, taskID, true)
	case args.GetBool("undone"):
		err = tasks.ToggleCompletion(ctx, taskID, false)
	default:
		current, refreshErr := tasks.Refresh(ctx)
		if refreshErr != nil {
			return nil, refreshErr
		}
		task, ok := cli.FindTask(current, taskID)
		if !ok {
			return nil, fmt.Errorf("task %d: %w", taskID, models.ErrNotFound)
		}
		err = tasks.Toggle(ctx, task)
	}
	if err != nil {
		return nil, err
	}

	snapshot := tasks.Snapshot()
	updated, _ := cli.FindTask(snapshot.Tasks, taskID)
	action := "updated"
	if updated != nil {
		action = "marked not done"
		if updated.Completed {
			action = "marked done"
		}
	}
	return taskResult{Action: action, Task: updated, Tasks: snapshot.Tasks}, nil
}
