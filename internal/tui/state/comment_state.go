package state

import "github.com/thenoetrevino/todolink/internal/models"

// CommentState mirrors the comment dialog for the active thread.
type CommentState struct {
	open     bool
	taskID   int
	loading  bool
	comments []*models.Comment
	notice   string
}

// NewCommentState creates a closed CommentState.
func NewCommentState() *CommentState {
	return &CommentState{comments: []*models.Comment{}}
}

// Open shows the dialog for taskID with nothing loaded yet.
func (s *CommentState) Open(taskID int) {
	s.open = true
	s.taskID = taskID
	s.loading = false
	s.comments = []*models.Comment{}
	s.notice = ""
}

// SetLoading marks the thread as being fetched.
func (s *CommentState) SetLoading() {
	s.loading = true
}

// SetComments replaces the visible thread.
func (s *CommentState) SetComments(comments []*models.Comment) {
	if comments == nil {
		comments = []*models.Comment{}
	}
	s.loading = false
	s.comments = comments
}

// SetNotice shows a static message instead of (or after) the thread.
func (s *CommentState) SetNotice(notice string) {
	s.loading = false
	s.notice = notice
}

// Close hides the dialog and drops the thread.
func (s *CommentState) Close() {
	s.open = false
	s.taskID = 0
	s.loading = false
	s.comments = []*models.Comment{}
	s.notice = ""
}

// IsOpen reports whether the dialog is visible.
func (s *CommentState) IsOpen() bool {
	return s.open
}

// TaskID returns the task whose thread is shown.
func (s *CommentState) TaskID() int {
	return s.taskID
}

// Loading reports whether the thread fetch is in flight.
func (s *CommentState) Loading() bool {
	return s.loading
}

// Comments returns the visible thread.
func (s *CommentState) Comments() []*models.Comment {
	return s.comments
}

// Notice returns the static message, empty when none.
func (s *CommentState) Notice() string {
	return s.notice
}
