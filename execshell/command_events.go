package execshell

// CommandEventObserver receives lifecycle notifications for child processes.
type CommandEventObserver interface {
	// CommandStarted notifies observers that the child was spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted reports the child's exit status the first time it is observed.
	CommandCompleted(command ShellCommand, status ExitStatus)
	// CommandExecutionFailed reports spawn or status query failures.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExitStatus) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

// commandEventObservers fans events out to every attached observer.
type commandEventObservers []CommandEventObserver

func (observers commandEventObservers) CommandStarted(command ShellCommand) {
	for _, observer := range observers {
		observer.CommandStarted(command)
	}
}

func (observers commandEventObservers) CommandCompleted(command ShellCommand, status ExitStatus) {
	for _, observer := range observers {
		observer.CommandCompleted(command, status)
	}
}

func (observers commandEventObservers) CommandExecutionFailed(command ShellCommand, failure error) {
	for _, observer := range observers {
		observer.CommandExecutionFailed(command, failure)
	}
}
