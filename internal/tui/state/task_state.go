package state

import "github.com/thenoetrevino/todolink/internal/models"

// TaskState holds the task set most recently rendered by the synchronizer.
type TaskState struct {
	tasks  []*models.Task
	loaded bool
}

// NewTaskState creates an empty TaskState that has not been rendered yet.
func NewTaskState() *TaskState {
	return &TaskState{tasks: []*models.Task{}}
}

// Replace swaps in a full task set. The list is never merged.
func (s *TaskState) Replace(tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	s.tasks = tasks
	s.loaded = true
}

// Tasks returns the rendered task set.
func (s *TaskState) Tasks() []*models.Task {
	return s.tasks
}

// Len returns the number of rendered tasks.
func (s *TaskState) Len() int {
	return len(s.tasks)
}

// At returns the task at index i, or nil when i is out of range.
func (s *TaskState) At(i int) *models.Task {
	if i < 0 || i >= len(s.tasks) {
		return nil
	}
	return s.tasks[i]
}

// Loaded reports whether any refresh has rendered yet.
func (s *TaskState) Loaded() bool {
	return s.loaded
}

// Reset forgets the rendered set, used on logout.
func (s *TaskState) Reset() {
	s.tasks = []*models.Task{}
	s.loaded = false
}
