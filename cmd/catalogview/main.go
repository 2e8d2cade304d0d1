// Command catalogview browses a remote product catalog.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/catalogview/internal/cli"
	"github.com/rshade/catalogview/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its error to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode returns the code carried by a *cli.ExitError anywhere in err's
// chain, 0 for nil and 1 otherwise.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}
