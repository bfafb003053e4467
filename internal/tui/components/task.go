package components

import (
	"fmt"

	"github.com/thenoetrevino/todolink/internal/models"
)

// StatusMarker returns the check box shown in front of a task
func StatusMarker(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return TodoStyle.Render("[ ]")
}

// RenderTaskRow renders one task line: marker, title and assignee
func RenderTaskRow(task *models.Task, selected bool) string {
	line := fmt.Sprintf("%s %s  %s",
		StatusMarker(task.Completed),
		task.Title,
		SubtleStyle.Render("Assigned to: "+task.AssigneeLabel()),
	)
	if selected {
		return SelectedRowStyle.Render(line)
	}
	return RowStyle.Render(line)
}
