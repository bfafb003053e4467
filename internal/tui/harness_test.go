package tui

import (
	"context"
	"reflect"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todolink/internal/app"
	cliutil "github.com/thenoetrevino/todolink/internal/testutil/cli"
	"github.com/thenoetrevino/todolink/internal/testutil/fakeapi"
)

// harness drives a Model synchronously: every command runs to completion and
// every message it produces is fed back through Update before send returns.
type harness struct {
	t      *testing.T
	server *fakeapi.Server
	app    *app.App
	model  Model

	mu    sync.Mutex
	inbox []tea.Msg
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	server, a := cliutil.SetupCLITest(t)
	return newHarnessWithApp(t, server, a)
}

func newHarnessWithApp(t *testing.T, server *fakeapi.Server, a *app.App) *harness {
	t.Helper()
	h := &harness{t: t, server: server, app: a}
	h.model = InitialModel(context.Background(), a)
	h.model.outbox.attach(func(msg tea.Msg) {
		h.mu.Lock()
		h.inbox = append(h.inbox, msg)
		h.mu.Unlock()
	})

	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// init runs the model's Init command
func (h *harness) init() {
	h.pump(h.run(h.model.Init()))
}

func (h *harness) send(msg tea.Msg) {
	h.pump([]tea.Msg{msg})
}

func (h *harness) pump(queue []tea.Msg) {
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		next, cmd := h.model.Update(msg)
		h.model = next.(Model)
		queue = append(queue, h.drain()...)
		queue = append(queue, h.run(cmd)...)
	}
}

// run executes cmd and returns the messages it produced, collaborator messages first.
// Messages from other packages (cursor blinks, tea.Quit) are dropped.
func (h *harness) run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	out := h.drain()

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			out = append(out, h.run(c)...)
		}
		return out
	}
	if msg != nil && reflect.TypeOf(msg).PkgPath() == reflect.TypeOf(Model{}).PkgPath() {
		out = append(out, msg)
	}
	return out
}

func (h *harness) drain() []tea.Msg {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := h.inbox
	h.inbox = nil
	return msgs
}

// press sends each key in order
func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

// typeText sends s one rune at a time
func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
}

// login fills the login form and submits it
func (h *harness) login(username, password string) {
	h.typeText(username)
	h.press("enter")
	h.typeText(password)
	h.press("enter")
}

// view returns the rendered screen
func (h *harness) view() string {
	return h.model.View().Content
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "shift+tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	case "ctrl+t":
		return tea.KeyPressMsg(tea.Key{Code: 't', Mod: tea.ModCtrl})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case " ":
		return tea.KeyPressMsg(tea.Key{Text: " ", Code: tea.KeySpace})
	default:
		r := []rune(k)[0]
		return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
	}
}
