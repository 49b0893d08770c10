package execshell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/execshell"
)

func TestCommandMessageFormatter(testInstance *testing.T) {
	formatter := execshell.CommandMessageFormatter{}
	command := execshell.ShellCommand{
		Executable: "/bin/sh",
		Details: execshell.CommandDetails{
			Arguments:        []string{"-c", "echo hi", ""},
			WorkingDirectory: "/tmp/work",
		},
	}
	bareCommand := execshell.ShellCommand{
		Executable: "/usr/bin/true",
	}

	testCases := []struct {
		name            string
		build           func() string
		expectedMessage string
	}{
		{
			name:            "started",
			build:           func() string { return formatter.BuildStartedMessage(command) },
			expectedMessage: `Running sh -c "echo hi" "" (in /tmp/work)`,
		},
		{
			name:            "success_without_directory",
			build:           func() string { return formatter.BuildSuccessMessage(bareCommand) },
			expectedMessage: "Completed true",
		},
		{
			name: "exit_code_failure",
			build: func() string {
				return formatter.BuildFailureMessage(bareCommand, execshell.ExitStatus{Code: 2})
			},
			expectedMessage: "true failed with exit code 2",
		},
		{
			name: "signal_failure",
			build: func() string {
				return formatter.BuildFailureMessage(bareCommand, execshell.ExitStatus{Code: -1, Signal: "killed"})
			},
			expectedMessage: "true terminated by signal killed",
		},
		{
			name: "execution_failure",
			build: func() string {
				return formatter.BuildExecutionFailureMessage(bareCommand, errors.New("no such file"))
			},
			expectedMessage: "true failed: no such file",
		},
		{
			name:            "execution_failure_without_error",
			build:           func() string { return formatter.BuildExecutionFailureMessage(bareCommand, nil) },
			expectedMessage: "true failed: unknown error",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedMessage, testCase.build())
		})
	}
}

func TestExitStatus(testInstance *testing.T) {
	require.True(testInstance, execshell.ExitStatus{}.Success())
	require.False(testInstance, execshell.ExitStatus{Code: 1}.Success())
	require.False(testInstance, execshell.ExitStatus{Code: -1, Signal: "killed"}.Success())
	require.Equal(testInstance, "exit code 1", execshell.ExitStatus{Code: 1}.String())
	require.Equal(testInstance, "signal killed", execshell.ExitStatus{Code: -1, Signal: "killed"}.String())
}
