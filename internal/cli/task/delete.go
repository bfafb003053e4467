package task

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/cli/prompt"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/services/tasklist"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		RunE: handler.Command(handler.HandlerFunc(runDelete),
			handler.CommandConfig{Auth: models.AuthLogin},
			func(cmd *cobra.Command) error {
				_, err := handler.NewFlagParser(cmd).ParseTaskID("id")
				return err
			}),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// deleteResult reports a delete, or that it was cancelled
type deleteResult struct {
	TaskID    int      `json:"task_id"`
	Cancelled bool     `json:"cancelled"`
	Tasks     taskList `json:"tasks,omitempty"`
}

func (r deleteResult) IDs() []int {
	return nil
}

func (r deleteResult) PrintHuman(w io.Writer) error {
	if r.Cancelled {
		_, err := fmt.Fprintln(w, "Cancelled")
		return err
	}
	fmt.Fprintf(w, "✓ Task %d deleted successfully\n\n", r.TaskID)
	return r.Tasks.PrintHuman(w)
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID := args.GetInt("id", 0)

	confirm := prompt.Confirmer(args.CLI.Prompter)
	if args.GetBool("force") || args.GetBool("quiet") {
		confirm = tasklist.Approved
	}

	tasks := args.CLI.App.NewTaskList(nil)
	err := tasks.Delete(ctx, taskID, confirm)
	if errors.Is(err, tasklist.ErrDeleteCancelled) {
		return deleteResult{TaskID: taskID, Cancelled: true}, nil
	}
	if err != nil {
		return nil, err
	}

	return deleteResult{TaskID: taskID, Tasks: tasks.Snapshot().Tasks}, nil
}
