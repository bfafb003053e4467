package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Assigned to:"
	ValueStyle    lipgloss.Style // For field values

	// Task markers
	DoneStyle lipgloss.Style
	TodoStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	DoneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Done))

	TodoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Todo))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusMarker renders the done/todo marker for a task
func StatusMarker(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return TodoStyle.Render("[ ]")
}

// RenderTaskLine renders a task as "[x] #3 Title  Assigned to: name"
func RenderTaskLine(task *models.Task) string {
	return fmt.Sprintf("%s %s %s  %s %s",
		StatusMarker(task.Completed),
		SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)),
		ValueStyle.Render(task.Title),
		LabelStyle.Render("Assigned to:"),
		ValueStyle.Render(task.AssigneeLabel()))
}

// RenderUserLine renders a user as "#1 alice (admin)"
func RenderUserLine(u *models.User) string {
	return fmt.Sprintf("%s %s %s",
		SubtitleStyle.Render(fmt.Sprintf("#%d", u.ID)),
		ValueStyle.Render(u.Username),
		SubtitleStyle.Render("("+string(u.Role)+")"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
