// Command staffbook runs the interactive employee directory.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/staffbook/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
