package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todolink/internal/cli"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/tui"
)

// TUICmd returns the command that opens the interactive client
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client",
		Long: `Open the interactive client.

With credentials from flags or the environment the login screen is skipped.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer c.Close()

	if cli.HasCredentials(cmd) {
		if _, err := c.Authenticate(cmd, models.AuthLogin); err != nil {
			return cli.Fail(formatter, err)
		}
	}

	if err := tui.Run(cmd.Context(), c.App); err != nil {
		return cli.Fail(formatter, err)
	}
	return nil
}
