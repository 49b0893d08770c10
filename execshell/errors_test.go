package execshell_test

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/execshell"
)

const testExecutablePathConstant = "/usr/bin/tool"

func TestExecErrorMessages(testInstance *testing.T) {
	testCases := []struct {
		name            string
		execError       *execshell.ExecError
		expectedMessage string
	}{
		{
			name:            "spawn_failure",
			execError:       &execshell.ExecError{Executable: testExecutablePathConstant, ExitCode: -1, Err: os.ErrPermission},
			expectedMessage: "failed to execute child /usr/bin/tool: permission denied",
		},
		{
			name:            "exit_code",
			execError:       &execshell.ExecError{Executable: testExecutablePathConstant, ExitCode: 2},
			expectedMessage: "child process /usr/bin/tool failed with exit code 2",
		},
		{
			name:            "signal",
			execError:       &execshell.ExecError{Executable: testExecutablePathConstant, ExitCode: -1, Signal: "killed"},
			expectedMessage: "child process /usr/bin/tool terminated by signal killed",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedMessage, testCase.execError.Error())
		})
	}
}

func TestChildErrorMessages(testInstance *testing.T) {
	nestedError := errors.New("read failed")

	testCases := []struct {
		name            string
		childError      *execshell.ChildError
		expectedMessage string
	}{
		{
			name:            "exit_code_with_stderr",
			childError:      &execshell.ChildError{Executable: testExecutablePathConstant, ExitCode: 3, Stderr: "boom\n"},
			expectedMessage: "child process /usr/bin/tool failed with exit code 3: boom",
		},
		{
			name:            "exit_code_with_nested_error",
			childError:      &execshell.ChildError{Executable: testExecutablePathConstant, ExitCode: 1, Err: nestedError},
			expectedMessage: "child process /usr/bin/tool failed with exit code 1:  (read failed)",
		},
		{
			name:            "signal",
			childError:      &execshell.ChildError{Executable: testExecutablePathConstant, ExitCode: -1, Signal: "terminated", Stderr: "bye"},
			expectedMessage: "child process /usr/bin/tool terminated by signal terminated: bye",
		},
		{
			name:            "output_failure",
			childError:      &execshell.ChildError{Executable: testExecutablePathConstant, Err: execshell.ErrInvalidOutputEncoding},
			expectedMessage: "child process /usr/bin/tool: child output is not valid UTF-8",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedMessage, testCase.childError.Error())
		})
	}
}

func TestBrokenPipeWrapsOperatingSystemError(testInstance *testing.T) {
	require.ErrorIs(testInstance, execshell.ErrBrokenPipe, syscall.EPIPE)
}

func TestExitCodeExtraction(testInstance *testing.T) {
	testCases := []struct {
		name              string
		err               error
		expectedExitCode  int
		expectedAvailable bool
	}{
		{name: "nil", err: nil},
		{name: "unrelated", err: errors.New("other")},
		{name: "child_exit", err: &execshell.ChildError{ExitCode: 7}, expectedExitCode: 7, expectedAvailable: true},
		{name: "child_signal", err: &execshell.ChildError{ExitCode: -1, Signal: "killed"}, expectedExitCode: -1, expectedAvailable: true},
		{name: "child_decode", err: &execshell.ChildError{Err: execshell.ErrInvalidOutputEncoding}},
		{name: "exec_exit", err: &execshell.ExecError{ExitCode: 9}, expectedExitCode: 9, expectedAvailable: true},
		{name: "exec_spawn", err: &execshell.ExecError{ExitCode: -1, Err: os.ErrNotExist}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			exitCode, available := execshell.ExitCode(testCase.err)
			require.Equal(testInstance, testCase.expectedAvailable, available)
			require.Equal(testInstance, testCase.expectedExitCode, exitCode)
		})
	}
}
