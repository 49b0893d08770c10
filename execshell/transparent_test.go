//go:build unix

package execshell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/execshell"
)

func TestTransparentExecutorWait(testInstance *testing.T) {
	testCases := []struct {
		name             string
		script           string
		expectFailure    bool
		expectedExitCode int
	}{
		{name: "success", script: "exit 0"},
		{name: "exit_code", script: "echo visible >&2; exit 4", expectFailure: true, expectedExitCode: 4},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, spawnError := newScriptBuilder(testInstance, testCase.script).
				SetStandardInput(execshell.StandardInputNull).
				SpawnTransparent()
			require.NoError(testInstance, spawnError)

			waitError := executor.Wait()
			if !testCase.expectFailure {
				require.NoError(testInstance, waitError)
				return
			}

			var execError *execshell.ExecError
			require.ErrorAs(testInstance, waitError, &execError)
			require.Equal(testInstance, testCase.expectedExitCode, execError.ExitCode)
			require.NoError(testInstance, execError.Err)
			require.NotContains(testInstance, execError.Error(), "visible")

			var childError *execshell.ChildError
			require.False(testInstance, errors.As(waitError, &childError))

			exitCode, exitCodeAvailable := execshell.ExitCode(waitError)
			require.True(testInstance, exitCodeAvailable)
			require.Equal(testInstance, testCase.expectedExitCode, exitCode)
		})
	}
}

func TestTransparentExecutorStandardInputPolicies(testInstance *testing.T) {
	testCases := []struct {
		name   string
		policy execshell.StandardInputPolicy
	}{
		{name: "piped", policy: execshell.StandardInputPiped},
		{name: "null", policy: execshell.StandardInputNull},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, spawnError := newScriptBuilder(testInstance, "cat").
				SetStandardInput(testCase.policy).
				SpawnTransparent()
			require.NoError(testInstance, spawnError)

			require.NoError(testInstance, executor.CloseStdin())
			require.Eventually(testInstance, func() bool {
				running, pollError := executor.IsRunning()
				return pollError == nil && !running
			}, testEventuallyTimeout, testEventuallyTick)

			require.NoError(testInstance, executor.Wait())
			require.ErrorIs(testInstance, executor.Wait(), execshell.ErrExecutorConsumed)
		})
	}
}

func TestTransparentExecutorInheritedStreamsCannotBeClosed(testInstance *testing.T) {
	executor, spawnError := newScriptBuilder(testInstance, "exit 0").
		SetStandardInput(execshell.StandardInputNull).
		SpawnTransparent()
	require.NoError(testInstance, spawnError)

	require.NoError(testInstance, executor.CloseStdout())
	require.NoError(testInstance, executor.CloseStderr())
	require.NoError(testInstance, executor.CloseStdin())
	require.NoError(testInstance, executor.Wait())

	exitStatus, observed := executor.ExitStatus()
	require.True(testInstance, observed)
	require.Equal(testInstance, "exit code 0", exitStatus.String())
}
