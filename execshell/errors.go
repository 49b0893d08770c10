package execshell

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

const (
	unknownExitCodeConstant                  = -1
	execFailureTemplateConstant              = "failed to execute child %s: %v"
	exitCodeFailureTemplateConstant          = "child process %s failed with exit code %d"
	signalFailureTemplateConstant            = "child process %s terminated by signal %s"
	childFailureTemplateConstant             = "child process %s failed with exit code %d: %s"
	childSignalFailureTemplateConstant       = "child process %s terminated by signal %s: %s"
	childOutputFailureTemplateConstant       = "child process %s: %v"
	childNestedFailureSuffixTemplateConstant = " (%v)"
)

var (
	// ErrBrokenPipe reports access to a stream that was closed.
	ErrBrokenPipe = fmt.Errorf("stream closed: %w", syscall.EPIPE)
	// ErrBuilderConsumed reports a second spawn from the same CommandBuilder.
	ErrBuilderConsumed = errors.New("command builder already spawned a child")
	// ErrExecutorConsumed reports use of an executor after Wait or a Collect conversion.
	ErrExecutorConsumed = errors.New("executor already waited for its child")
	// ErrInvalidOutputEncoding reports stdout that is not valid UTF-8 text.
	ErrInvalidOutputEncoding = errors.New("child output is not valid UTF-8")
)

// ExecError reports a failure to create or inspect a child process, or a
// non-zero exit of a child whose stderr was not captured.
type ExecError struct {
	// Executable is the path of the spawned binary.
	Executable string
	// ExitCode is the child's exit code, or -1 when unknown.
	ExitCode int
	// Signal names the terminating signal, if any.
	Signal string
	// Err is the underlying operating system error.
	Err error
}

// Error implements the error interface.
func (execError *ExecError) Error() string {
	switch {
	case execError.Err != nil:
		return fmt.Sprintf(execFailureTemplateConstant, execError.Executable, execError.Err)
	case len(execError.Signal) > 0:
		return fmt.Sprintf(signalFailureTemplateConstant, execError.Executable, execError.Signal)
	default:
		return fmt.Sprintf(exitCodeFailureTemplateConstant, execError.Executable, execError.ExitCode)
	}
}

// Unwrap returns the underlying error.
func (execError *ExecError) Unwrap() error {
	return execError.Err
}

// ChildError reports a captured child that exited unsuccessfully, including
// its stderr, or captured output that could not be decoded.
type ChildError struct {
	// Executable is the path of the spawned binary.
	Executable string
	// ExitCode is the child's exit code, or -1 when unknown.
	ExitCode int
	// Signal names the terminating signal, if any.
	Signal string
	// Stderr holds the captured standard error, decoded lossily.
	Stderr string
	// Err is a nested failure such as a stderr read error.
	Err error
}

// Error implements the error interface.
func (childError *ChildError) Error() string {
	standardError := strings.TrimSpace(childError.Stderr)

	var message string
	switch {
	case len(childError.Signal) > 0:
		message = fmt.Sprintf(childSignalFailureTemplateConstant, childError.Executable, childError.Signal, standardError)
	case childError.ExitCode > 0:
		message = fmt.Sprintf(childFailureTemplateConstant, childError.Executable, childError.ExitCode, standardError)
	default:
		return fmt.Sprintf(childOutputFailureTemplateConstant, childError.Executable, childError.Err)
	}

	if childError.Err != nil {
		message += fmt.Sprintf(childNestedFailureSuffixTemplateConstant, childError.Err)
	}
	return message
}

// Unwrap returns the nested error.
func (childError *ChildError) Unwrap() error {
	return childError.Err
}

// ExitCode extracts the child's exit code from an error returned by Wait or a
// Collect conversion. The boolean is false when err does not describe a
// finished child.
func ExitCode(err error) (int, bool) {
	var childError *ChildError
	if errors.As(err, &childError) && (childError.ExitCode > 0 || len(childError.Signal) > 0) {
		return childError.ExitCode, true
	}

	var execError *ExecError
	if errors.As(err, &execError) && execError.Err == nil {
		return execError.ExitCode, true
	}

	return 0, false
}
