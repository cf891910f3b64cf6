package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanban/cmd"
	"github.com/thenoetrevino/kanban/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// CommandErrors were already reported by the command's formatter
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
