package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/app"
	"github.com/thenoetrevino/todolink/internal/cli"
	"github.com/thenoetrevino/todolink/internal/cli/prompt"
)

// Result is what a command run produced
type Result struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// Run executes cmd under a throwaway root carrying the persistent flags,
// injecting testApp and p through the command context.
func Run(t *testing.T, testApp *app.App, p prompt.Prompter, cmd *cobra.Command, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "todolink"}
	cli.AddPersistentFlags(root)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	// Disable usage output on error for cleaner test output
	root.SilenceUsage = true
	root.SilenceErrors = true

	ctx := cli.WithDeps(context.Background(), cli.Deps{App: testApp, Prompter: p})
	err := root.ExecuteContext(ctx)

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
		ExitCode: cli.ExitCode(err),
	}
}

// ExecuteCLICommand executes a CLI command with a test app instance and returns stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	r := Run(t, testApp, nil, cmd, args...)
	return r.Stdout, r.Err
}
