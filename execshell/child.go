package execshell

import (
	"io"
	"os"

	"go.uber.org/zap"
)

const (
	childSpawnedMessageConstant       = "child spawned"
	childExitedMessageConstant        = "child exited"
	childStatusFailedMessageConstant  = "child status query failed"
	logFieldExecutableConstant        = "executable"
	logFieldArgumentsConstant         = "arguments"
	logFieldWorkingDirectoryConstant  = "working_directory"
	logFieldProcessIdentifierConstant = "pid"
	logFieldExitCodeConstant          = "exit_code"
	logFieldSignalConstant            = "signal"
)

// childProcess owns the operating system process handle shared by both
// executors and memoizes its exit status.
type childProcess struct {
	command     ShellCommand
	process     *os.Process
	statusQuery exitStatusQuery
	exitStatus  *ExitStatus
	consumed    bool
	released    bool
	logger      *zap.Logger
	observer    CommandEventObserver
}

func newChildProcess(command ShellCommand, process *os.Process, logger *zap.Logger, observer CommandEventObserver) *childProcess {
	child := &childProcess{
		command:     command,
		process:     process,
		statusQuery: queryExitStatus,
		logger:      logger,
		observer:    observer,
	}

	child.logger.Debug(
		childSpawnedMessageConstant,
		zap.String(logFieldExecutableConstant, command.Executable),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
		zap.Int(logFieldProcessIdentifierConstant, process.Pid),
	)
	child.observer.CommandStarted(command)

	return child
}

// isRunning polls the child without blocking.
func (child *childProcess) isRunning() (bool, error) {
	if child.consumed {
		return false, ErrExecutorConsumed
	}
	if child.exitStatus != nil {
		return false, nil
	}

	status, exited, queryError := child.statusQuery(child.process, false)
	if queryError != nil {
		return false, child.statusFailure(queryError)
	}
	if !exited {
		return true, nil
	}

	child.recordExitStatus(status)
	return false, nil
}

// wait blocks until the exit status is known, reusing a memoized status.
func (child *childProcess) wait() (ExitStatus, error) {
	if child.exitStatus != nil {
		return *child.exitStatus, nil
	}

	status, _, queryError := child.statusQuery(child.process, true)
	if queryError != nil {
		return ExitStatus{}, child.statusFailure(queryError)
	}

	child.recordExitStatus(status)
	return status, nil
}

// consume marks the child as handed to a terminal operation.
func (child *childProcess) consume() error {
	if child.consumed {
		return ErrExecutorConsumed
	}
	child.consumed = true
	return nil
}

// release frees the process handle. It is safe to call more than once.
func (child *childProcess) release() {
	if child.released {
		return
	}
	child.released = true
	_ = child.process.Release()
}

func (child *childProcess) recordExitStatus(status ExitStatus) {
	child.exitStatus = &status

	child.logger.Debug(
		childExitedMessageConstant,
		zap.String(logFieldExecutableConstant, child.command.Executable),
		zap.Int(logFieldProcessIdentifierConstant, child.process.Pid),
		zap.Int(logFieldExitCodeConstant, status.Code),
		zap.String(logFieldSignalConstant, status.Signal),
	)
	child.observer.CommandCompleted(child.command, status)
}

func (child *childProcess) statusFailure(queryError error) error {
	execError := &ExecError{Executable: child.command.Executable, ExitCode: unknownExitCodeConstant, Err: queryError}

	child.logger.Debug(
		childStatusFailedMessageConstant,
		zap.String(logFieldExecutableConstant, child.command.Executable),
		zap.Int(logFieldProcessIdentifierConstant, child.process.Pid),
		zap.Error(queryError),
	)
	child.observer.CommandExecutionFailed(child.command, execError)

	return execError
}

// memoizedExitStatus returns the exit status if it was already observed.
func (child *childProcess) memoizedExitStatus() (ExitStatus, bool) {
	if child.exitStatus == nil {
		return ExitStatus{}, false
	}
	return *child.exitStatus, true
}

// closeStream closes the stream and marks it absent. Closing an absent stream
// is a no-op.
func closeStream(stream **os.File) error {
	if *stream == nil {
		return nil
	}
	closeError := (*stream).Close()
	*stream = nil
	return closeError
}

// readStream reads from an open stream or reports ErrBrokenPipe.
func readStream(stream *os.File, buffer []byte) (int, error) {
	if stream == nil {
		return 0, ErrBrokenPipe
	}
	return stream.Read(buffer)
}

// writeStream writes to an open stream or reports ErrBrokenPipe.
func writeStream(stream *os.File, data []byte) (int, error) {
	if stream == nil {
		return 0, ErrBrokenPipe
	}
	return stream.Write(data)
}

// drainStream reads stream to the end. An absent stream yields no data.
func drainStream(stream *os.File) ([]byte, error) {
	if stream == nil {
		return nil, nil
	}
	return io.ReadAll(stream)
}
