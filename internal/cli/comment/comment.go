package comment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli/styles"
	"github.com/thenoetrevino/todolink/internal/models"
	commentservice "github.com/thenoetrevino/todolink/internal/services/comment"
)

// CommentCmd returns the comment parent command
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read and post task comments",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(PostCmd())

	return cmd
}

// threadDialog is the comment dialog for one CLI invocation: it keeps
// whatever the viewer rendered last so the command can print it.
type threadDialog struct {
	taskID   int
	open     bool
	comments []*models.Comment
	notice   commentservice.Notice
}

func (d *threadDialog) Open(taskID int) {
	d.taskID = taskID
	d.open = true
	d.comments = nil
	d.notice = ""
}

func (d *threadDialog) Close()       { d.open = false }
func (d *threadDialog) ShowLoading() {}
func (d *threadDialog) ClearInput()  {}

func (d *threadDialog) RenderComments(comments []*models.Comment) {
	d.comments = comments
	d.notice = ""
}

func (d *threadDialog) RenderNotice(notice commentservice.Notice) {
	d.notice = notice
}

// threadResult is a rendered comment thread or the notice shown instead
type threadResult struct {
	TaskID   int               `json:"task_id"`
	Posted   bool              `json:"posted,omitempty"`
	Comments []*models.Comment `json:"comments,omitempty"`
	Notice   string            `json:"notice,omitempty"`
}

func newThreadResult(d *threadDialog, posted bool) threadResult {
	return threadResult{
		TaskID:   d.taskID,
		Posted:   posted,
		Comments: d.comments,
		Notice:   string(d.notice),
	}
}

func (r threadResult) IDs() []int {
	return nil
}

func (r threadResult) PrintHuman(w io.Writer) error {
	if r.Notice != "" {
		_, err := fmt.Fprintln(w, r.Notice)
		return err
	}
	if r.Posted {
		fmt.Fprintf(w, "✓ Comment added to task #%d\n\n", r.TaskID)
	}
	if r.Comments == nil {
		return nil
	}
	if len(r.Comments) == 0 {
		_, err := fmt.Fprintf(w, "No comments on task #%d\n", r.TaskID)
		return err
	}

	renderer, err := newMarkdownRenderer(w)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n\n", styles.TitleStyle.Render(fmt.Sprintf("Comments on task #%d (%d)", r.TaskID, len(r.Comments))))
	for _, c := range r.Comments {
		body, err := renderer.Render(c.Content)
		if err != nil {
			body = c.Content
		}
		fmt.Fprintf(w, "%s\n", styles.LabelStyle.Render(c.Username))
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.Trim(body, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// newMarkdownRenderer renders comment bodies, styled only when w is a terminal
func newMarkdownRenderer(w io.Writer) (*glamour.TermRenderer, error) {
	style := glamour.WithStandardStyle(glamourstyles.NoTTYStyle)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		style = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(styles.CardWidth-4))
}
