package main

import (
	"fmt"
	"os"

	"github.com/temirov/runshell/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%s\n"
)

// main executes the runshell command-line application and exits with the
// child's exit code when a child failed.
func main() {
	exitCode, message := cli.ResolveExit(cli.Execute())
	if len(message) > 0 {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, message)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
