package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/services/comment"
)

// outbox forwards collaborator callbacks into the program as messages.
// Callbacks run on command goroutines and must never touch the model directly.
type outbox struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (o *outbox) attach(send func(tea.Msg)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.send = send
}

func (o *outbox) post(msg tea.Msg) {
	o.mu.Lock()
	send := o.send
	o.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// taskRenderer implements tasklist.Renderer
type taskRenderer struct {
	out *outbox
	gen int
}

func (r taskRenderer) RenderTasks(tasks []*models.Task) {
	r.out.post(scopedMsg{gen: r.gen, msg: tasksRenderedMsg{tasks: tasks}})
}

// commentDialog implements comment.Dialog
type commentDialog struct {
	out *outbox
	gen int
}

func (d commentDialog) post(msg tea.Msg) {
	d.out.post(scopedMsg{gen: d.gen, msg: msg})
}

func (d commentDialog) Open(taskID int) {
	d.post(commentOpenedMsg{taskID: taskID})
}

func (d commentDialog) Close() {
	d.post(commentClosedMsg{})
}

func (d commentDialog) ShowLoading() {
	d.post(commentLoadingMsg{})
}

func (d commentDialog) RenderComments(comments []*models.Comment) {
	d.post(commentsRenderedMsg{comments: comments})
}

func (d commentDialog) RenderNotice(notice comment.Notice) {
	d.post(commentNoticeMsg{notice: notice})
}

func (d commentDialog) ClearInput() {
	d.post(commentInputClearedMsg{})
}

// scopedMsg carries output produced on behalf of one session generation.
// Update drops it once the user has logged out since.
type scopedMsg struct {
	gen int
	msg tea.Msg
}

// Synchronizer output
type tasksRenderedMsg struct {
	tasks []*models.Task
}

// Command results
type (
	authDoneMsg struct {
		session models.Session
		err     error
	}
	refreshDoneMsg struct {
		err error
	}
	usersLoadedMsg struct {
		users []*models.User
		err   error
	}
	taskMutatedMsg struct {
		action string
		err    error
	}
	commentOpenDoneMsg struct {
		err error
	}
	commentPostDoneMsg struct {
		err error
	}
)

// Comment dialog output
type (
	commentOpenedMsg struct {
		taskID int
	}
	commentClosedMsg       struct{}
	commentLoadingMsg      struct{}
	commentsRenderedMsg    struct{ comments []*models.Comment }
	commentNoticeMsg       struct{ notice comment.Notice }
	commentInputClearedMsg struct{}
)
