package execshell

import "os"

// TransparentExecutor is a child that writes directly to the parent's stdout
// and stderr. Its output is not observable in-process.
type TransparentExecutor struct {
	child         *childProcess
	standardInput *os.File
}

// CloseStdin closes the child's stdin pipe when StandardInputPiped was selected.
func (executor *TransparentExecutor) CloseStdin() error {
	return closeStream(&executor.standardInput)
}

// CloseStdout is a no-op: stdout is inherited and not owned by the executor.
func (executor *TransparentExecutor) CloseStdout() error {
	return nil
}

// CloseStderr is a no-op: stderr is inherited and not owned by the executor.
func (executor *TransparentExecutor) CloseStderr() error {
	return nil
}

// IsRunning reports whether the child is still alive without blocking.
func (executor *TransparentExecutor) IsRunning() (bool, error) {
	return executor.child.isRunning()
}

// ExitStatus returns the child's exit status if it has already been observed.
func (executor *TransparentExecutor) ExitStatus() (ExitStatus, bool) {
	return executor.child.memoizedExitStatus()
}

// Wait closes stdin and blocks until the child exits. A failing child yields
// an ExecError carrying only the exit code.
func (executor *TransparentExecutor) Wait() error {
	if consumeError := executor.child.consume(); consumeError != nil {
		return consumeError
	}
	defer executor.child.release()

	_ = executor.CloseStdin()

	exitStatus, waitError := executor.child.wait()
	if waitError != nil {
		return waitError
	}
	if exitStatus.Success() {
		return nil
	}

	return &ExecError{
		Executable: executor.child.command.Executable,
		ExitCode:   exitStatus.Code,
		Signal:     exitStatus.Signal,
	}
}
