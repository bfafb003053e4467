package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/todolink/internal/models"
)

// ResolveAssignee maps value, a user ID or a username, to a user ID from users
func ResolveAssignee(users []*models.User, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &models.ValidationError{Field: "assignee", Message: "assignee is required"}
	}

	if id, err := strconv.Atoi(value); err == nil {
		for _, u := range users {
			if u.ID == id {
				return id, nil
			}
		}
		return 0, &models.ValidationError{Field: "assignee", Message: fmt.Sprintf("no user with id %d", id)}
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, value) {
			return u.ID, nil
		}
	}
	return 0, &models.ValidationError{Field: "assignee", Message: fmt.Sprintf("no user named %q", value)}
}

// FindTask returns the task with id from tasks
func FindTask(tasks []*models.Task, id int) (*models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
