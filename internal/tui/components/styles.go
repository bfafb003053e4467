// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ListBoxStyle frames the task list
	ListBoxStyle lipgloss.Style

	// RowStyle is an unselected task row
	RowStyle lipgloss.Style

	// SelectedRowStyle is the highlighted task row
	SelectedRowStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (app header, dialog headers)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text such as the assignee
	SubtleStyle lipgloss.Style

	DoneStyle lipgloss.Style
	TodoStyle lipgloss.Style

	// LoginBoxStyle defines the login screen box (accent border)
	LoginBoxStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// CommentBoxStyle defines the comment dialog
	CommentBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme config.ColorScheme) {
	theme.Init(scheme)

	ListBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Border)).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Background(lipgloss.Color(scheme.SelectedBg)).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
		PaddingLeft(1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Done))

	TodoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Todo))

	LoginBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Padding(1)

	CommentBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.DialogBorder)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Background(lipgloss.Color(scheme.StatusBarBg))
}
