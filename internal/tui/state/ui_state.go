package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	LoginMode         Mode = iota // Login / signup screen, no session yet
	NormalMode                    // Task list navigation
	CreateTaskMode                // Admin create form
	DeleteConfirmMode             // Confirming task deletion
	CommentMode                   // Comment thread dialog for one task
	HelpMode                      // Displaying help screen
)

// String returns a short label for the status bar
func (m Mode) String() string {
	switch m {
	case LoginMode:
		return "LOGIN"
	case NormalMode:
		return "TASKS"
	case CreateTaskMode:
		return "CREATE"
	case DeleteConfirmMode:
		return "DELETE"
	case CommentMode:
		return "COMMENTS"
	case HelpMode:
		return "HELP"
	default:
		return "?"
	}
}

// UIState manages the user interface state.
// This includes the selected row, terminal dimensions and the current interaction mode.
type UIState struct {
	// selectedTask is the index of the highlighted row in the task list
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState starting on the login screen.
func NewUIState() *UIState {
	return &UIState{mode: LoginMode}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records new terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SelectedTask returns the highlighted row index.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// MoveSelection moves the highlight by delta rows, staying within [0, count).
// Returns false when the highlight did not move.
func (s *UIState) MoveSelection(delta, count int) bool {
	next := s.selectedTask + delta
	if next < 0 || next >= count {
		return false
	}
	s.selectedTask = next
	return true
}

// ClampSelection keeps the highlight valid after the list changed length.
func (s *UIState) ClampSelection(count int) {
	if s.selectedTask >= count {
		s.selectedTask = count - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// ResetSelection moves the highlight back to the first row.
func (s *UIState) ResetSelection() {
	s.selectedTask = 0
}
