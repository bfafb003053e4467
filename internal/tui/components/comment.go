package components

import (
	"strings"

	"github.com/thenoetrevino/todolink/internal/models"
)

// CommentDialogProps is everything the comment dialog shows
type CommentDialogProps struct {
	TaskTitle string
	Loading   bool
	Comments  []*models.Comment
	Notice    string
	Input     string // rendered text input
	Width     int
}

// RenderCommentDialog renders the comment thread with its input line
func RenderCommentDialog(props CommentDialogProps) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Comments: " + props.TaskTitle))
	b.WriteString("\n\n")

	switch {
	case props.Loading:
		b.WriteString(SubtleStyle.Render("Loading..."))
		b.WriteString("\n")
	case props.Notice != "":
		b.WriteString(props.Notice)
		b.WriteString("\n")
	case len(props.Comments) == 0:
		b.WriteString(SubtleStyle.Render("No comments yet"))
		b.WriteString("\n")
	default:
		for _, c := range props.Comments {
			b.WriteString(TitleStyle.Render(c.Username))
			b.WriteString(": ")
			b.WriteString(c.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(props.Input)
	b.WriteString("\n\n")
	b.WriteString(SubtleStyle.Render("enter post • esc close"))

	style := CommentBoxStyle
	if props.Width > 0 {
		style = style.Width(min(props.Width-4, 80))
	}
	return style.Render(b.String())
}
