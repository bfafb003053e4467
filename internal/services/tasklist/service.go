// Package tasklist keeps a rendered task list converged with server state.
//
// Consistency is full-reload: every successful mutation is followed by one
// unconditional re-fetch of the whole collection, which replaces whatever was
// rendered before. Nothing is patched locally. Concurrent refreshes are not
// serialized; the response that arrives last is rendered even when it was
// requested earlier (last-arrival-wins). Snapshot reports when that happened.
package tasklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/thenoetrevino/todolink/internal/models"
)

// TaskAPI is the subset of the API client the synchronizer needs
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// Renderer displays the task list. RenderTasks always receives the full set.
type Renderer interface {
	RenderTasks(tasks []*models.Task)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(tasks []*models.Task)

// RenderTasks calls f(tasks)
func (f RendererFunc) RenderTasks(tasks []*models.Task) {
	f(tasks)
}

// Confirmer asks the user to approve a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Approved is a Confirmer for callers that already obtained confirmation
var Approved Confirmer = ConfirmFunc(func(string) bool { return true })

// Snapshot is the most recently rendered task set
type Snapshot struct {
	Tasks []*models.Task
	// RequestSeq is the sequence number of the refresh whose response was rendered
	RequestSeq uint64
	// Stale is true when a newer refresh had been issued before this one arrived
	Stale bool
}

// Stats counts refresh activity
type Stats struct {
	Refreshes    int64
	StaleRenders int64
}

// Service defines the task list operations
type Service interface {
	// Refresh fetches the full collection and replaces the rendered set
	Refresh(ctx context.Context) ([]*models.Task, error)

	// Mutations; each is followed by exactly one Refresh on success
	Create(ctx context.Context, req models.CreateTaskRequest) error
	ToggleCompletion(ctx context.Context, taskID int, completed bool) error
	Toggle(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, taskID int, confirm Confirmer) error

	// Observability
	Snapshot() Snapshot
	Stats() Stats
}

// service implements Service
type service struct {
	client   TaskAPI
	renderer Renderer

	issued atomic.Uint64 // last refresh sequence handed out

	mu       sync.Mutex
	snapshot Snapshot

	refreshes    atomic.Int64
	staleRenders atomic.Int64
}

// NewService creates a task list synchronizer. renderer may be nil.
func NewService(client TaskAPI, renderer Renderer) Service {
	if renderer == nil {
		renderer = RendererFunc(func([]*models.Task) {})
	}
	return &service{
		client:   client,
		renderer: renderer,
		snapshot: Snapshot{Tasks: []*models.Task{}},
	}
}

// Refresh fetches all tasks and renders them, replacing the previous set
func (s *service) Refresh(ctx context.Context) ([]*models.Task, error) {
	seq := s.issued.Add(1)
	s.refreshes.Add(1)

	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stale := seq < s.issued.Load()
	if stale {
		s.staleRenders.Add(1)
		slog.Warn("rendering task list from an older refresh", "request_seq", seq, "latest_seq", s.issued.Load())
	}
	s.snapshot = Snapshot{Tasks: tasks, RequestSeq: seq, Stale: stale}
	s.renderer.RenderTasks(tasks)

	return tasks, nil
}

// Create validates the request locally, creates the task, then refreshes
func (s *service) Create(ctx context.Context, req models.CreateTaskRequest) error {
	if err := validateCreate(&req); err != nil {
		return err
	}

	if _, err := s.client.CreateTask(ctx, req); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	slog.Debug("task created", "title", req.Title, "assigned_to", req.AssignedTo)

	_, err := s.Refresh(ctx)
	return err
}

// ToggleCompletion sends completed as given, then refreshes.
// Callers pass the already-inverted flag; see Toggle.
func (s *service) ToggleCompletion(ctx context.Context, taskID int, completed bool) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if _, err := s.client.UpdateTask(ctx, taskID, models.UpdateTaskRequest{Completed: models.Bool(completed)}); err != nil {
		return fmt.Errorf("failed to update task %d: %w", taskID, err)
	}

	_, err := s.Refresh(ctx)
	return err
}

// Toggle flips the completion flag of a rendered task
func (s *service) Toggle(ctx context.Context, task *models.Task) error {
	if task == nil {
		return ErrInvalidTaskID
	}
	return s.ToggleCompletion(ctx, task.ID, !task.Completed)
}

// Delete asks for confirmation, deletes the task, then refreshes
func (s *service) Delete(ctx context.Context, taskID int, confirm Confirmer) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if confirm == nil || !confirm.Confirm(fmt.Sprintf("Delete task #%d?", taskID)) {
		return ErrDeleteCancelled
	}

	if err := s.client.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	_, err := s.Refresh(ctx)
	return err
}

// Snapshot returns the last rendered set and where it came from
func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot
	snap.Tasks = make([]*models.Task, len(s.snapshot.Tasks))
	copy(snap.Tasks, s.snapshot.Tasks)
	return snap
}

// Stats returns refresh counters
func (s *service) Stats() Stats {
	return Stats{
		Refreshes:    s.refreshes.Load(),
		StaleRenders: s.staleRenders.Load(),
	}
}

func validateCreate(req *models.CreateTaskRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	if req.AssignedTo <= 0 {
		return &models.ValidationError{Field: "assigned_to", Message: "assignee is required"}
	}
	return nil
}
