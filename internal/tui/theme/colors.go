package theme

import "github.com/thenoetrevino/todolink/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Create         string
	Delete         string
	Done           string
	Todo           string
	Border         string
	DialogBorder   string
	SelectedBorder string
	SelectedBg     string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Create = colors.Create
	Delete = colors.Delete
	Done = colors.Done
	Todo = colors.Todo
	Border = colors.Border
	DialogBorder = colors.DialogBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
