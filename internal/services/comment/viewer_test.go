package comment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/session"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type mockCommentAPI struct {
	mu        sync.Mutex
	comments  map[int][]*models.Comment
	listCalls int
	postCalls int
	listErr   error
	postErr   error
	nilList   bool
}

func newMockCommentAPI() *mockCommentAPI {
	return &mockCommentAPI{comments: make(map[int][]*models.Comment)}
}

func (m *mockCommentAPI) ListComments(ctx context.Context, taskID int) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.nilList {
		return nil, nil
	}
	return append([]*models.Comment{}, m.comments[taskID]...), nil
}

func (m *mockCommentAPI) PostComment(ctx context.Context, taskID int, content string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postCalls++
	if m.postErr != nil {
		return nil, m.postErr
	}
	c := &models.Comment{TaskID: taskID, Username: "me", Content: content}
	m.comments[taskID] = append(m.comments[taskID], c)
	return c, nil
}

// roleCaps grants every capability to admins only
type roleCaps struct {
	admin bool
}

func (r roleCaps) HasCapability(session.Capability) bool {
	return r.admin
}

// recordingDialog records every dialog interaction in order
type recordingDialog struct {
	events   []string
	open     bool
	taskID   int
	comments []*models.Comment
	notice   Notice
}

func (d *recordingDialog) Open(taskID int) {
	d.events = append(d.events, "open")
	d.open = true
	d.taskID = taskID
}

func (d *recordingDialog) Close() {
	d.events = append(d.events, "close")
	d.open = false
}

func (d *recordingDialog) ShowLoading() {
	d.events = append(d.events, "loading")
}

func (d *recordingDialog) RenderComments(comments []*models.Comment) {
	d.events = append(d.events, "comments")
	d.comments = comments
	d.notice = ""
}

func (d *recordingDialog) RenderNotice(notice Notice) {
	d.events = append(d.events, "notice")
	d.notice = notice
}

func (d *recordingDialog) ClearInput() {
	d.events = append(d.events, "clear")
}

// ============================================================================
// OPEN
// ============================================================================

func TestOpen_AdminListsThread(t *testing.T) {
	api := newMockCommentAPI()
	api.comments[3] = []*models.Comment{{TaskID: 3, Username: "bob", Content: "on it"}}
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: true}, dialog)

	require.NoError(t, viewer.Open(context.Background(), 3))

	assert.Equal(t, []string{"open", "loading", "comments"}, dialog.events)
	assert.True(t, dialog.open)
	assert.Equal(t, 3, dialog.taskID)
	require.Len(t, dialog.comments, 1)
	assert.Equal(t, "on it", dialog.comments[0].Content)

	active, ok := viewer.ActiveTask()
	assert.True(t, ok)
	assert.Equal(t, 3, active)
}

func TestOpen_AdminNullThreadIsEmpty(t *testing.T) {
	api := newMockCommentAPI()
	api.nilList = true
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: true}, dialog)

	require.NoError(t, viewer.Open(context.Background(), 3))

	assert.NotNil(t, dialog.comments)
	assert.Empty(t, dialog.comments)
}

func TestOpen_AdminForbiddenRendersNotice(t *testing.T) {
	api := newMockCommentAPI()
	api.listErr = &models.HTTPStatusError{Op: "list comments", Code: 403}
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: true}, dialog)

	err := viewer.Open(context.Background(), 3)

	assert.NoError(t, err, "a 403 is rendered, not propagated")
	assert.Equal(t, NoticePermissionDenied, dialog.notice)
	assert.True(t, dialog.open)
}

func TestOpen_AdminOtherErrorsPropagate(t *testing.T) {
	api := newMockCommentAPI()
	api.listErr = &models.HTTPStatusError{Op: "list comments", Code: 500}
	viewer := NewViewer(api, roleCaps{admin: true}, &recordingDialog{})

	err := viewer.Open(context.Background(), 3)

	assert.Equal(t, 500, models.StatusCode(err))
}

func TestOpen_MemberNeverLists(t *testing.T) {
	api := newMockCommentAPI()
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: false}, dialog)

	require.NoError(t, viewer.Open(context.Background(), 3))

	assert.Equal(t, 0, api.listCalls)
	assert.Equal(t, NoticeWriteOnly, dialog.notice)
	assert.Equal(t, []string{"open", "notice"}, dialog.events)
}

func TestOpen_InvalidTask(t *testing.T) {
	viewer := NewViewer(newMockCommentAPI(), roleCaps{}, &recordingDialog{})
	assert.ErrorIs(t, viewer.Open(context.Background(), 0), ErrInvalidTaskID)
}

// ============================================================================
// POST
// ============================================================================

func TestPost_AdminReopensThread(t *testing.T) {
	api := newMockCommentAPI()
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: true}, dialog)
	ctx := context.Background()

	require.NoError(t, viewer.Open(ctx, 5))
	dialog.events = nil

	require.NoError(t, viewer.Post(ctx, "looks good"))

	assert.Equal(t, []string{"clear", "open", "loading", "comments"}, dialog.events)
	require.Len(t, dialog.comments, 1)
	assert.Equal(t, "looks good", dialog.comments[0].Content)
	assert.Equal(t, 2, api.listCalls)
	assert.True(t, dialog.open)
}

func TestPost_MemberConfirmsAndCloses(t *testing.T) {
	api := newMockCommentAPI()
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: false}, dialog)
	ctx := context.Background()

	require.NoError(t, viewer.Open(ctx, 5))
	dialog.events = nil

	require.NoError(t, viewer.Post(ctx, "done on my side"))

	assert.Equal(t, []string{"clear", "notice", "close"}, dialog.events)
	assert.Equal(t, NoticePosted, dialog.notice)
	assert.False(t, dialog.open)
	assert.Equal(t, 0, api.listCalls)
	assert.Equal(t, 1, api.postCalls)

	_, ok := viewer.ActiveTask()
	assert.False(t, ok)
}

func TestPost_EmptyContentIsValidationError(t *testing.T) {
	api := newMockCommentAPI()
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: true}, dialog)
	ctx := context.Background()
	require.NoError(t, viewer.Open(ctx, 5))

	for _, content := range []string{"", "   ", "\n\t"} {
		err := viewer.Post(ctx, content)
		assert.True(t, models.IsValidation(err))
	}
	assert.Equal(t, 0, api.postCalls)
}

func TestPost_WithoutOpenThread(t *testing.T) {
	api := newMockCommentAPI()
	viewer := NewViewer(api, roleCaps{admin: true}, &recordingDialog{})

	err := viewer.Post(context.Background(), "hello")

	assert.ErrorIs(t, err, ErrNoActiveThread)
	assert.Equal(t, 0, api.postCalls)
}

func TestPost_ServerErrorKeepsInput(t *testing.T) {
	api := newMockCommentAPI()
	api.postErr = &models.NetworkError{Op: "post comment", Err: errors.New("timeout")}
	dialog := &recordingDialog{}
	viewer := NewViewer(api, roleCaps{admin: false}, dialog)
	ctx := context.Background()
	require.NoError(t, viewer.Open(ctx, 5))
	dialog.events = nil

	err := viewer.Post(ctx, "hello")

	var netErr *models.NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Empty(t, dialog.events, "nothing is cleared or closed when posting fails")
}

func TestClose_ForgetsThread(t *testing.T) {
	dialog := &recordingDialog{}
	viewer := NewViewer(newMockCommentAPI(), roleCaps{}, dialog)
	require.NoError(t, viewer.Open(context.Background(), 2))

	viewer.Close()

	_, ok := viewer.ActiveTask()
	assert.False(t, ok)
	assert.False(t, dialog.open)
}
