package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todolink/internal/models"
	cliutil "github.com/thenoetrevino/todolink/internal/testutil/cli"
	"github.com/thenoetrevino/todolink/internal/testutil/fakeapi"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

func lastNotification(t *testing.T, m Model) state.Notification {
	t.Helper()
	all := m.NotificationState.All()
	require.NotEmpty(t, all, "expected a notification")
	return all[len(all)-1]
}

// ============================================================================
// LOGIN
// ============================================================================

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)

	h.login(cliutil.AdminName, cliutil.AdminPassword)

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.True(t, h.app.Sessions.IsAuthenticated())
	assert.Equal(t, 1, h.model.TaskState.Len())
	assert.Equal(t, "Logged in as root", lastNotification(t, h.model).Message)
	assert.Equal(t, 1, h.server.Count(fakeapi.RouteListTasks))
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t)

	h.login(cliutil.AdminName, "nope")

	assert.Equal(t, state.LoginMode, h.model.UIState.Mode())
	assert.False(t, h.app.Sessions.IsAuthenticated())
	n := lastNotification(t, h.model)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "Login failed")
	assert.Empty(t, h.model.LoginForm.Password.Value(), "password should be cleared after a failure")
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteListTasks))
}

func TestLogin_EmptyUsernameMakesNoRequest(t *testing.T) {
	h := newHarness(t)

	h.press("enter")
	h.typeText("pw")
	h.press("enter")

	assert.Equal(t, state.LoginMode, h.model.UIState.Mode())
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteLogin))
	assert.Equal(t, "username cannot be empty", lastNotification(t, h.model).Message)
}

func TestSignup_ToggleMode(t *testing.T) {
	h := newHarness(t)

	h.press("ctrl+t")
	assert.Equal(t, models.AuthSignup, h.model.LoginForm.Mode())
	assert.Contains(t, h.view(), "Sign up")

	h.login("carol", "carolpw")

	require.Equal(t, state.NormalMode, h.model.UIState.Mode())
	sess, ok := h.app.Sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "carol", sess.Username)
	assert.Equal(t, models.RoleMember, sess.Role)
	assert.Equal(t, 1, h.server.Count(fakeapi.RouteSignup))
	assert.Equal(t, models.AuthLogin, h.model.LoginForm.Mode(), "form resets to login after success")
}

func TestInitialModel_AlreadyAuthenticated(t *testing.T) {
	server, a := cliutil.SetupCLITest(t)
	server.AddTask("Buy milk", 2, false)
	_, err := a.Sessions.Authenticate(context.Background(), cliutil.MemberName, cliutil.MemberPass, models.AuthLogin)
	require.NoError(t, err)

	h := newHarnessWithApp(t, server, a)
	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())

	h.init()
	assert.Equal(t, 1, h.model.TaskState.Len())
}

// ============================================================================
// TASK LIST
// ============================================================================

func TestTaskList_RendersMarkersAndAssignee(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, true)
	h.server.AddTask("Walk dog", 0, false)

	h.login(cliutil.AdminName, cliutil.AdminPassword)

	view := h.view()
	assert.Contains(t, view, "[x] Buy milk")
	assert.Contains(t, view, "Assigned to: bob")
	assert.Contains(t, view, "[ ] Walk dog")
	assert.Contains(t, view, "Assigned to: Unassigned")
}

func TestTaskList_LoadingBeforeFirstRender(t *testing.T) {
	server, a := cliutil.SetupCLITest(t)
	_, err := a.Sessions.Authenticate(context.Background(), cliutil.AdminName, cliutil.AdminPassword, models.AuthLogin)
	require.NoError(t, err)

	h := newHarnessWithApp(t, server, a)
	assert.Contains(t, h.view(), "Loading...")

	h.init()
	assert.Contains(t, h.view(), "No tasks yet")
}

func TestTaskList_LastRenderWins(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	newer := []*models.Task{{ID: 1, Title: "newer"}, {ID: 2, Title: "second"}}
	older := []*models.Task{{ID: 1, Title: "older"}}
	h.send(tasksRenderedMsg{tasks: newer})
	h.send(tasksRenderedMsg{tasks: older})

	require.Equal(t, 1, h.model.TaskState.Len())
	assert.Equal(t, "older", h.model.TaskState.At(0).Title)
}

func TestTaskList_NavigationStaysInBounds(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("one", 2, false)
	h.server.AddTask("two", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("k")
	assert.Equal(t, 0, h.model.UIState.SelectedTask())
	h.press("j", "j", "j")
	assert.Equal(t, 1, h.model.UIState.SelectedTask())
	h.press("up")
	assert.Equal(t, 0, h.model.UIState.SelectedTask())
}

func TestTaskList_RefreshKey(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	h.server.AddTask("added elsewhere", 2, false)

	h.press("r")

	assert.Equal(t, 1, h.model.TaskState.Len())
	assert.Equal(t, 2, h.server.Count(fakeapi.RouteListTasks))
}

func TestTaskList_RefreshFailureNotifies(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	h.server.SetHook(fakeapi.RouteListTasks, fakeapi.Respond(500, `{"error":"boom"}`))

	h.press("r")

	assert.Equal(t, state.LevelError, lastNotification(t, h.model).Level)
}

func TestToggleTask(t *testing.T) {
	h := newHarness(t)
	id := h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press(" ")

	tasks := h.server.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].ID)
	assert.True(t, tasks[0].Completed)
	assert.True(t, h.model.TaskState.At(0).Completed)
	assert.Equal(t, "Task marked done", lastNotification(t, h.model).Message)
}

func TestToggleTask_EmptyListIsNoop(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press(" ")

	assert.Equal(t, 0, h.server.Count(fakeapi.RouteUpdateTask))
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask_Admin(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	refreshes := h.server.Count(fakeapi.RouteListTasks)

	h.press("a")
	require.Equal(t, state.CreateTaskMode, h.model.UIState.Mode())
	require.Len(t, h.model.CreateForm.Users(), 2)

	h.typeText("Buy milk")
	h.press("tab", "tab") // root, then bob
	require.Equal(t, cliutil.MemberName, h.model.CreateForm.Assignee().Username)
	h.press("enter")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Equal(t, 1, h.server.Count(fakeapi.RouteCreateTask))
	assert.Equal(t, refreshes+1, h.server.Count(fakeapi.RouteListTasks), "exactly one refresh after create")
	require.Equal(t, 1, h.model.TaskState.Len())
	assert.Equal(t, "Buy milk", h.model.TaskState.At(0).Title)
	assert.Equal(t, "bob", h.model.TaskState.At(0).AssignedName)
}

func TestCreateTask_SaveFormKey(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("a")
	h.typeText("Walk dog")
	h.press("shift+tab") // wraps to the last user
	h.press("ctrl+s")

	assert.Equal(t, 1, h.server.Count(fakeapi.RouteCreateTask))
}

func TestCreateTask_MissingAssigneeStaysInForm(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("a")
	h.typeText("Buy milk")
	h.press("enter")

	assert.Equal(t, state.CreateTaskMode, h.model.UIState.Mode())
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteCreateTask))
	n := lastNotification(t, h.model)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "assignee is required", n.Message)
}

func TestCreateTask_MemberIsGated(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press("a")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteListUsers))
	assert.Equal(t, "Only admins can create tasks", lastNotification(t, h.model).Message)
}

func TestCreateTask_EscCancels(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("a")
	h.typeText("never mind")
	h.press("esc")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteCreateTask))
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteTask_Confirmed(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("d")
	require.Equal(t, state.DeleteConfirmMode, h.model.UIState.Mode())
	assert.Contains(t, h.view(), `Delete "Buy milk"?`)

	h.press("y")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Empty(t, h.server.Tasks())
	assert.Equal(t, 0, h.model.TaskState.Len())
	assert.Equal(t, "Task deleted", lastNotification(t, h.model).Message)
}

func TestDeleteTask_Declined(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("d", "n")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Len(t, h.server.Tasks(), 1)
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteDeleteTask))
	assert.Equal(t, "Delete cancelled", lastNotification(t, h.model).Message)
}

// ============================================================================
// COMMENTS
// ============================================================================

func TestComments_AdminSeesThreadAndPosts(t *testing.T) {
	h := newHarness(t)
	id := h.server.AddTask("Buy milk", 2, false)
	h.server.AddComment(id, "bob", "on it")
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("c")
	require.Equal(t, state.CommentMode, h.model.UIState.Mode())
	require.Len(t, h.model.CommentState.Comments(), 1)
	assert.Contains(t, h.view(), "on it")

	h.typeText("thanks")
	h.press("enter")

	assert.Equal(t, state.CommentMode, h.model.UIState.Mode())
	assert.Len(t, h.model.CommentState.Comments(), 2)
	assert.Empty(t, h.model.commentInput.Value())
	assert.Equal(t, 2, h.server.Count(fakeapi.RouteListComments))
}

func TestComments_MemberIsWriteOnly(t *testing.T) {
	h := newHarness(t)
	id := h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press("c")
	require.Equal(t, state.CommentMode, h.model.UIState.Mode())
	assert.Contains(t, h.model.CommentState.Notice(), "write-only")
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteListComments))

	h.typeText("done soon")
	h.press("enter")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.Equal(t, "Comment posted.", lastNotification(t, h.model).Message)
	assert.Len(t, h.server.Comments(id), 1)
	assert.Equal(t, 0, h.server.Count(fakeapi.RouteListComments))
}

func TestComments_AdminForbiddenShowsNotice(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	h.server.SetHook(fakeapi.RouteListComments, fakeapi.Respond(403, `{"error":"forbidden"}`))

	h.press("c")

	assert.Equal(t, state.CommentMode, h.model.UIState.Mode())
	assert.Contains(t, h.model.CommentState.Notice(), "Permission denied")
	assert.False(t, h.model.NotificationState.HasAny(), "a handled 403 is not an error")
}

func TestComments_EmptyPostKeepsDialog(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press("c", "enter")

	assert.Equal(t, state.CommentMode, h.model.UIState.Mode())
	assert.Equal(t, 0, h.server.Count(fakeapi.RoutePostComment))
	assert.Equal(t, "comment cannot be empty", lastNotification(t, h.model).Message)
}

func TestComments_ServerErrorKeepsInput(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.MemberName, cliutil.MemberPass)
	h.server.SetHook(fakeapi.RoutePostComment, fakeapi.Respond(500, `{"error":"boom"}`))

	h.press("c")
	h.typeText("hello")
	h.press("enter")

	assert.Equal(t, state.CommentMode, h.model.UIState.Mode())
	assert.Equal(t, "hello", h.model.commentInput.Value())
	assert.Equal(t, state.LevelError, lastNotification(t, h.model).Level)
}

func TestComments_EscCloses(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("c", "esc")

	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
	assert.False(t, h.model.CommentState.IsOpen())

	_, active := h.model.viewer.ActiveTask()
	assert.False(t, active)

	// A thread that arrives after closing is ignored
	h.send(commentsRenderedMsg{comments: []*models.Comment{{Content: "late"}}})
	assert.Empty(t, h.model.CommentState.Comments())
}

// ============================================================================
// SESSION, HELP AND KEYS
// ============================================================================

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	gen := h.model.generation

	h.press("L")

	assert.Equal(t, state.LoginMode, h.model.UIState.Mode())
	assert.False(t, h.app.Sessions.IsAuthenticated())
	assert.Equal(t, 0, h.model.TaskState.Len())

	// Responses still in flight at logout are dropped
	h.send(scopedMsg{gen: gen, msg: tasksRenderedMsg{tasks: []*models.Task{{ID: 1, Title: "late"}}}})
	assert.Equal(t, 0, h.model.TaskState.Len())

	// And a different user can sign in afterwards
	h.login(cliutil.MemberName, cliutil.MemberPass)
	sess, ok := h.app.Sessions.Current()
	require.True(t, ok)
	assert.Equal(t, cliutil.MemberName, sess.Username)
}

func TestLogout_RefreshFromEarlierSessionIsDropped(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	// Issued by the admin session, completes only after bob signed in
	pending := h.model.refreshCmd()

	h.press("L")
	h.login(cliutil.MemberName, cliutil.MemberPass)
	require.Equal(t, 1, h.model.TaskState.Len())

	h.server.AddTask("Plan offsite", 1, false)
	before := h.server.Count(fakeapi.RouteListTasks)
	h.pump(h.run(pending))

	assert.Equal(t, before+1, h.server.Count(fakeapi.RouteListTasks))
	assert.Equal(t, 1, h.model.TaskState.Len())
	assert.Equal(t, "Buy milk", h.model.TaskState.At(0).Title)

	// The current session still refreshes normally
	h.press("r")
	assert.Equal(t, 2, h.model.TaskState.Len())
}

func TestLogout_ClosesCommentThread(t *testing.T) {
	h := newHarness(t)
	h.server.AddTask("Buy milk", 2, false)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("c")
	viewer := h.model.viewer
	_, active := viewer.ActiveTask()
	require.True(t, active)

	// Back on the task list while the thread is still recorded
	h.model = h.model.closeCommentDialog()
	h.press("L")

	_, active = viewer.ActiveTask()
	assert.False(t, active)
	assert.NotSame(t, viewer, h.model.viewer)
	_, active = h.model.viewer.ActiveTask()
	assert.False(t, active)
}

func TestHelp_ListsBindingsAndReturns(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	h.press("?")
	require.Equal(t, state.HelpMode, h.model.UIState.Mode())
	view := h.view()
	assert.Contains(t, view, "toggle done")
	assert.Contains(t, view, "space")

	h.press("x")
	assert.Equal(t, state.NormalMode, h.model.UIState.Mode())
}

func TestKeyMappings_LiteralSpace(t *testing.T) {
	server, a := cliutil.SetupCLITest(t)
	server.AddTask("Buy milk", 2, false)
	a.Config.KeyMappings.ToggleTask = " "
	h := newHarnessWithApp(t, server, a)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	h.press(" ")

	assert.Equal(t, 1, server.Count(fakeapi.RouteUpdateTask))
}

func TestKeyMappings_AreConfigurable(t *testing.T) {
	server, a := cliutil.SetupCLITest(t)
	a.Config.KeyMappings.Refresh = "R"
	h := newHarnessWithApp(t, server, a)
	h.login(cliutil.AdminName, cliutil.AdminPassword)
	before := server.Count(fakeapi.RouteListTasks)

	h.press("r")
	assert.Equal(t, before, server.Count(fakeapi.RouteListTasks), "default key no longer bound")

	h.press("R")
	assert.Equal(t, before+1, server.Count(fakeapi.RouteListTasks))
}

func TestStatusBar_ShowsUserAndCounters(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.MemberName, cliutil.MemberPass)

	view := h.view()
	assert.Contains(t, view, "bob (member)")
	assert.Contains(t, view, "requests 2")
	assert.Contains(t, view, "TASKS")
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	h.login(cliutil.AdminName, cliutil.AdminPassword)

	_, cmd := h.model.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
