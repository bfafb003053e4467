package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps is everything the status bar shows
type StatusBarProps struct {
	Width    int
	Mode     string
	User     string // empty when signed out
	Tasks    int
	Requests int64
	Failures int64
	Stale    int64
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode and signed-in user
// Right side: request counters and the help hint
func RenderStatusBar(props StatusBarProps) string {
	user := props.User
	if user == "" {
		user = "signed out"
	}
	leftText := fmt.Sprintf(" %s | %s", props.Mode, user)
	rightText := fmt.Sprintf("tasks %d | requests %d | failures %d | stale %d | ? help ",
		props.Tasks, props.Requests, props.Failures, props.Stale)

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := StatusBarStyle.Render(rightText)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
