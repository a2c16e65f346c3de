// Command levels checks files of integer level reports and generates
// synthetic ones.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/levels/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	err := cmd.Execute()
	code := cli.GetExitCode(err)
	if err != nil && !printed(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}

// printed reports whether a subcommand already rendered err itself.
// Subcommands return *cli.ExitError after writing their own output;
// flag parsing and argument errors arrive here unprinted.
func printed(err error) bool {
	var exitErr *cli.ExitError
	return errors.As(err, &exitErr)
}
