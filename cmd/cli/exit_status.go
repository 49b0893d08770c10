package cli

import (
	"errors"

	"github.com/temirov/runshell/execshell"
)

const genericFailureExitCodeConstant = 1

// ResolveExit maps an execution error to the process exit code and the
// message to print. A transparent child that exited unsuccessfully already
// wrote its own diagnostics, so only its exit code is propagated.
func ResolveExit(executionError error) (int, string) {
	if executionError == nil {
		return 0, ""
	}

	exitCode, childExited := execshell.ExitCode(executionError)
	if !childExited || exitCode <= 0 {
		exitCode = genericFailureExitCodeConstant
	}

	var execError *execshell.ExecError
	if childExited && errors.As(executionError, &execError) {
		return exitCode, ""
	}
	return exitCode, executionError.Error()
}
