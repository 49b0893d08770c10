//go:build unix

package execshell_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/execshell"
	"github.com/temirov/runshell/lookup"
)

const (
	testShellNameConstant      = "sh"
	testShellFlagConstant      = "-c"
	testPreferredShellVariable = "SHELL"
	testEventuallyTimeout      = 5 * time.Second
	testEventuallyTick         = 10 * time.Millisecond
)

// newScriptBuilder builds a command running script through the system sh.
func newScriptBuilder(testInstance *testing.T, script string) *execshell.CommandBuilder {
	testInstance.Helper()
	builder, builderError := execshell.NewWithName(testShellNameConstant, testShellFlagConstant, script)
	require.NoError(testInstance, builderError)
	return builder
}

// pinPreferredShell points SHELL at the system sh for the duration of the test.
func pinPreferredShell(testInstance *testing.T) string {
	testInstance.Helper()
	shellBinary, resolveError := lookup.ResolveByName(testShellNameConstant)
	require.NoError(testInstance, resolveError)
	testInstance.Setenv(testPreferredShellVariable, shellBinary.Path())
	return shellBinary.Path()
}

type recordedCommandEvent struct {
	kind    string
	command execshell.ShellCommand
	status  execshell.ExitStatus
	failure error
}

type recordingCommandEventObserver struct {
	mutex  sync.Mutex
	events []recordedCommandEvent
}

func (observer *recordingCommandEventObserver) CommandStarted(command execshell.ShellCommand) {
	observer.record(recordedCommandEvent{kind: "started", command: command})
}

func (observer *recordingCommandEventObserver) CommandCompleted(command execshell.ShellCommand, status execshell.ExitStatus) {
	observer.record(recordedCommandEvent{kind: "completed", command: command, status: status})
}

func (observer *recordingCommandEventObserver) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	observer.record(recordedCommandEvent{kind: "failed", command: command, failure: failure})
}

func (observer *recordingCommandEventObserver) record(event recordedCommandEvent) {
	observer.mutex.Lock()
	defer observer.mutex.Unlock()
	observer.events = append(observer.events, event)
}

func (observer *recordingCommandEventObserver) kinds() []string {
	observer.mutex.Lock()
	defer observer.mutex.Unlock()
	kinds := make([]string, 0, len(observer.events))
	for _, event := range observer.events {
		kinds = append(kinds, event.kind)
	}
	return kinds
}
