package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todolink/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderAll stacks every notification in state, one per line
func RenderAll(s *state.NotificationState) string {
	lines := make([]string, 0, len(s.All()))
	for _, n := range s.All() {
		lines = append(lines, RenderInline(fromLevel(n.Level), n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
