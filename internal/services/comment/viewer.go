// Package comment drives the per-task comment dialog with role-gated visibility.
package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/session"
)

// Notice is a static message shown in place of (or after) a comment list
type Notice string

const (
	NoticePermissionDenied Notice = "Permission denied: you are not allowed to view these comments."
	NoticeWriteOnly        Notice = "Comments are write-only for your role. You can still leave one below."
	NoticePosted           Notice = "Comment posted."
)

// CommentAPI is the subset of the API client the viewer needs
type CommentAPI interface {
	ListComments(ctx context.Context, taskID int) ([]*models.Comment, error)
	PostComment(ctx context.Context, taskID int, content string) (*models.Comment, error)
}

// CapabilityChecker reports advisory capabilities of the current session
type CapabilityChecker interface {
	HasCapability(capability session.Capability) bool
}

// Dialog is the visual collaborator for a comment thread
type Dialog interface {
	Open(taskID int)
	Close()
	ShowLoading()
	RenderComments(comments []*models.Comment)
	RenderNotice(notice Notice)
	ClearInput()
}

// Viewer opens comment threads one task at a time. It is safe for concurrent use.
type Viewer struct {
	client CommentAPI
	caps   CapabilityChecker
	dialog Dialog

	mu         sync.Mutex
	activeTask int
}

// NewViewer creates a comment thread viewer
func NewViewer(client CommentAPI, caps CapabilityChecker, dialog Dialog) *Viewer {
	return &Viewer{client: client, caps: caps, dialog: dialog}
}

// Open makes taskID the active thread, opens the dialog and loads what the role may see.
// Admins get the thread (or a permission-denied notice if the server still says 403);
// everyone else gets the write-only notice without any list request.
func (v *Viewer) Open(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	v.mu.Lock()
	v.activeTask = taskID
	v.mu.Unlock()

	v.dialog.Open(taskID)
	return v.load(ctx, taskID)
}

func (v *Viewer) load(ctx context.Context, taskID int) error {
	if !v.caps.HasCapability(session.CapViewAllComments) {
		v.dialog.RenderNotice(NoticeWriteOnly)
		return nil
	}

	v.dialog.ShowLoading()
	comments, err := v.client.ListComments(ctx, taskID)
	if err != nil {
		if errors.Is(err, models.ErrPermissionDenied) {
			slog.Info("comment listing refused by server", "task_id", taskID)
			v.dialog.RenderNotice(NoticePermissionDenied)
			return nil
		}
		return fmt.Errorf("failed to load comments for task %d: %w", taskID, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	v.dialog.RenderComments(comments)
	return nil
}

// Post submits content to the active thread.
// Admins see the refreshed thread afterwards; other roles get a confirmation and the dialog closes.
func (v *Viewer) Post(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return &models.ValidationError{Field: "content", Message: "comment cannot be empty"}
	}

	taskID, ok := v.ActiveTask()
	if !ok {
		return ErrNoActiveThread
	}

	if _, err := v.client.PostComment(ctx, taskID, content); err != nil {
		return fmt.Errorf("failed to post comment on task %d: %w", taskID, err)
	}
	v.dialog.ClearInput()

	if v.caps.HasCapability(session.CapViewAllComments) {
		return v.Open(ctx, taskID)
	}

	v.dialog.RenderNotice(NoticePosted)
	v.Close()
	return nil
}

// Close closes the dialog and forgets the active thread
func (v *Viewer) Close() {
	v.mu.Lock()
	v.activeTask = 0
	v.mu.Unlock()
	v.dialog.Close()
}

// ActiveTask returns the task whose thread is open
func (v *Viewer) ActiveTask() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeTask, v.activeTask > 0
}
