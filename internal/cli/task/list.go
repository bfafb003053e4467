package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/models"
)

// Status filters
const (
	statusAll  = "all"
	statusDone = "done"
	statusTodo = "todo"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks visible to you.

Admins see every task; members see the tasks assigned to them.

Examples:
  todolink task list
  todolink task list --status=todo
  todolink task list --json
  for id in $(todolink task list --quiet); do echo "$id"; done
`,
		RunE: handler.Command(handler.HandlerFunc(runList),
			handler.CommandConfig{Auth: models.AuthLogin},
			parseListFlags),
	}

	cmd.Flags().String("status", statusAll, "Filter by status: all, done, todo")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func parseListFlags(cmd *cobra.Command) error {
	status, _ := cmd.Flags().GetString("status")
	switch status {
	case statusAll, statusDone, statusTodo:
		return nil
	default:
		return fmt.Errorf("invalid status %q (must be: all, done, todo)", status)
	}
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	tasks, err := args.CLI.App.NewTaskList(nil).Refresh(ctx)
	if err != nil {
		return nil, err
	}

	status := args.GetString("status", statusAll)
	filtered := make(taskList, 0, len(tasks))
	for _, t := range tasks {
		if status == statusAll || (status == statusDone) == t.Completed {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
