package execshell

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	replacementCharacterConstant              = "\uFFFD"
	standardErrorReadFailureTemplateConstant  = "read child stderr: %w"
	standardOutputReadFailureTemplateConstant = "read child stdout: %w"
)

// CapturingExecutor is a child whose standard streams are all piped through
// the parent. Reads pull from the child's stdout and writes push to its stdin.
type CapturingExecutor struct {
	child          *childProcess
	standardInput  *os.File
	standardOutput *os.File
	standardError  *os.File
}

// CloseStdin closes the child's stdin. Later writes report ErrBrokenPipe.
func (executor *CapturingExecutor) CloseStdin() error {
	return closeStream(&executor.standardInput)
}

// CloseStdout closes the child's stdout. Later reads report ErrBrokenPipe.
func (executor *CapturingExecutor) CloseStdout() error {
	return closeStream(&executor.standardOutput)
}

// CloseStderr closes the child's stderr. A later failing Wait reports no stderr text.
func (executor *CapturingExecutor) CloseStderr() error {
	return closeStream(&executor.standardError)
}

// IsRunning reports whether the child is still alive without blocking.
func (executor *CapturingExecutor) IsRunning() (bool, error) {
	return executor.child.isRunning()
}

// ExitStatus returns the child's exit status if it has already been observed.
func (executor *CapturingExecutor) ExitStatus() (ExitStatus, bool) {
	return executor.child.memoizedExitStatus()
}

// Read reads from the child's stdout.
func (executor *CapturingExecutor) Read(buffer []byte) (int, error) {
	return readStream(executor.standardOutput, buffer)
}

// Write writes to the child's stdin.
func (executor *CapturingExecutor) Write(data []byte) (int, error) {
	return writeStream(executor.standardInput, data)
}

// Flush forwards to the child's stdin. Pipes are unbuffered, so it only
// reports whether stdin is still open.
func (executor *CapturingExecutor) Flush() error {
	if executor.standardInput == nil {
		return ErrBrokenPipe
	}
	return nil
}

// Wait closes stdin and blocks until the child exits. When the child fails its
// stderr is drained and returned in a ChildError.
func (executor *CapturingExecutor) Wait() error {
	if consumeError := executor.child.consume(); consumeError != nil {
		return consumeError
	}
	defer executor.release()

	_ = executor.CloseStdin()

	exitStatus, waitError := executor.child.wait()
	if waitError != nil {
		return waitError
	}
	if exitStatus.Success() {
		return nil
	}

	standardError, drainError := drainStream(executor.standardError)
	childError := &ChildError{
		Executable: executor.child.command.Executable,
		ExitCode:   exitStatus.Code,
		Signal:     exitStatus.Signal,
		Stderr:     strings.ToValidUTF8(string(standardError), replacementCharacterConstant),
	}
	if drainError != nil {
		childError.Err = fmt.Errorf(standardErrorReadFailureTemplateConstant, drainError)
	}
	return childError
}

// CollectBytes closes stdin, reads stdout to the end and then waits for the
// child. Draining stdout first keeps the child from blocking on a full pipe.
func (executor *CapturingExecutor) CollectBytes() ([]byte, error) {
	if executor.child.consumed {
		return nil, ErrExecutorConsumed
	}

	_ = executor.CloseStdin()

	standardOutput, readError := io.ReadAll(executor)
	if readError != nil {
		executor.child.consumed = true
		executor.release()
		return nil, &ChildError{
			Executable: executor.child.command.Executable,
			ExitCode:   unknownExitCodeConstant,
			Err:        fmt.Errorf(standardOutputReadFailureTemplateConstant, readError),
		}
	}

	if waitError := executor.Wait(); waitError != nil {
		return nil, waitError
	}
	return standardOutput, nil
}

// CollectString is CollectBytes for children that print UTF-8 text.
func (executor *CapturingExecutor) CollectString() (string, error) {
	standardOutput, collectError := executor.CollectBytes()
	if collectError != nil {
		return "", collectError
	}
	if !utf8.Valid(standardOutput) {
		return "", &ChildError{
			Executable: executor.child.command.Executable,
			Err:        ErrInvalidOutputEncoding,
		}
	}
	return string(standardOutput), nil
}

func (executor *CapturingExecutor) release() {
	_ = executor.CloseStdin()
	_ = executor.CloseStdout()
	_ = executor.CloseStderr()
	executor.child.release()
}
