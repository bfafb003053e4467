package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/todolink/cmd"
	"github.com/thenoetrevino/todolink/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
