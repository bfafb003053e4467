package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli"
	"github.com/thenoetrevino/todolink/internal/cli/auth"
	"github.com/thenoetrevino/todolink/internal/cli/comment"
	"github.com/thenoetrevino/todolink/internal/cli/task"
	"github.com/thenoetrevino/todolink/internal/cli/users"
	"github.com/thenoetrevino/todolink/internal/logging"
)

// NewRootCmd builds the todolink command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todolink",
		Short: "todolink - a client for the shared todo list",
		Long: `todolink talks to a todo collaboration API.

Run without a subcommand to open the interactive client. Every other command
signs in for that invocation only; pass --username/--password, set
TODOLINK_USERNAME/TODOLINK_PASSWORD, or answer the prompts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool(cli.FlagVerbose)
			return logging.Init(verbose)
		},
		RunE: runTUI,
	}

	cli.AddPersistentFlags(rootCmd)
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(comment.CommentCmd())
	rootCmd.AddCommand(users.UsersCmd())
	rootCmd.AddCommand(auth.LoginCmd())
	rootCmd.AddCommand(auth.SignupCmd())
	rootCmd.AddCommand(TUICmd())

	return rootCmd
}

// Execute runs the command line. The returned error carries the exit code.
func Execute(ctx context.Context) error {
	return run(ctx, NewRootCmd())
}

func run(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)

	// Flag and argument errors come from cobra itself and were not reported yet
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		return cli.UsageError(cli.NewFormatter(rootCmd), err)
	}
	return err
}
