package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/styles"
	"github.com/thenoetrevino/todolink/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskList is the rendered task set as a command result
type taskList []*models.Task

func (l taskList) IDs() []int {
	ids := make([]int, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

func (l taskList) PrintHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}

	fmt.Fprintf(w, "Found %d tasks:\n\n", len(l))
	for _, t := range l {
		if _, err := fmt.Fprintf(w, "  %s\n", styles.RenderTaskLine(t)); err != nil {
			return err
		}
	}
	return nil
}

// taskResult reports a single task after a mutation together with the refreshed list
type taskResult struct {
	Action string       `json:"action"`
	Task   *models.Task `json:"task,omitempty"`
	Tasks  taskList     `json:"tasks"`
}

func (r taskResult) GetID() int {
	if r.Task == nil {
		return 0
	}
	return r.Task.ID
}

func (r taskResult) PrintHuman(w io.Writer) error {
	if r.Task != nil {
		fmt.Fprintf(w, "✓ Task #%d %s\n", r.Task.ID, r.Action)
		fmt.Fprintf(w, "  %s\n\n", styles.RenderTaskLine(r.Task))
	} else {
		fmt.Fprintf(w, "✓ Task %s\n\n", r.Action)
	}
	return r.Tasks.PrintHuman(w)
}
