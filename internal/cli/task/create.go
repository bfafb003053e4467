package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli"
	"github.com/thenoetrevino/todolink/internal/cli/handler"
	"github.com/thenoetrevino/todolink/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task (admin only)",
		Long: `Create a task and assign it to a user.

The assignee can be a user ID or a username. Only admins may create tasks;
the server rejects everyone else.

Examples:
  todolink task create --title="Buy milk" --assignee=bob
  todolink task create --title="Ship release" --assignee=2 --json
  TASK_ID=$(todolink task create --title="Fix login" --assignee=bob --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate),
			handler.CommandConfig{Auth: models.AuthLogin},
			validateCreateFlags),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("assignee", "", "User ID or username to assign (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

// validateCreateFlags rejects a blank title or missing assignee before any request is made
func validateCreateFlags(cmd *cobra.Command) error {
	title, _ := cmd.Flags().GetString("title")
	if strings.TrimSpace(title) == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	assignee, _ := cmd.Flags().GetString("assignee")
	if strings.TrimSpace(assignee) == "" {
		return &models.ValidationError{Field: "assignee", Message: "assignee is required"}
	}
	return nil
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	title := args.GetString("title", "")
	assignee := args.GetString("assignee", "")

	users, err := args.CLI.App.Client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	assignedTo, err := cli.ResolveAssignee(users, assignee)
	if err != nil {
		return nil, err
	}

	tasks := args.CLI.App.NewTaskList(nil)
	if err := tasks.Create(ctx, models.CreateTaskRequest{Title: title, AssignedTo: assignedTo}); err != nil {
		return nil, err
	}

	snapshot := tasks.Snapshot()
	return taskResult{
		Action: "created",
		Task:   newestWithTitle(snapshot.Tasks, strings.TrimSpace(title)),
		Tasks:  snapshot.Tasks,
	}, nil
}

// newestWithTitle picks the highest-ID task titled title; the API does not echo the new ID reliably
func newestWithTitle(tasks []*models.Task, title string) *models.Task {
	var newest *models.Task
	for _, t := range tasks {
		if t.Title == title && (newest == nil || t.ID > newest.ID) {
			newest = t
		}
	}
	return newest
}
