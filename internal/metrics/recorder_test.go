package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/execshell"
)

const testMetricsTextfileNameConstant = "runshell.prom"

func TestRecorderCountsEvents(testInstance *testing.T) {
	command := execshell.ShellCommand{Executable: "/bin/sh"}

	recorder := NewRecorder()
	recorder.CommandStarted(command)
	recorder.CommandStarted(command)
	recorder.CommandStarted(command)
	recorder.CommandCompleted(command, execshell.ExitStatus{Code: 0})
	recorder.CommandCompleted(command, execshell.ExitStatus{Code: 2})
	recorder.CommandCompleted(command, execshell.ExitStatus{Code: -1, Signal: "killed"})
	recorder.CommandExecutionFailed(command, errors.New("spawn failed"))

	require.Equal(testInstance, 3.0, testutil.ToFloat64(recorder.started))
	require.Equal(testInstance, 1.0, testutil.ToFloat64(recorder.completed.WithLabelValues(outcomeSuccessConstant)))
	require.Equal(testInstance, 1.0, testutil.ToFloat64(recorder.completed.WithLabelValues(outcomeFailureConstant)))
	require.Equal(testInstance, 1.0, testutil.ToFloat64(recorder.completed.WithLabelValues(outcomeSignalConstant)))
	require.Equal(testInstance, 1.0, testutil.ToFloat64(recorder.executionFailures))
}

func TestRecorderRegistriesAreIndependent(testInstance *testing.T) {
	firstRecorder := NewRecorder()
	secondRecorder := NewRecorder()

	firstRecorder.CommandStarted(execshell.ShellCommand{})

	require.Equal(testInstance, 1.0, testutil.ToFloat64(firstRecorder.started))
	require.Equal(testInstance, 0.0, testutil.ToFloat64(secondRecorder.started))

	metricCount, gatherError := testutil.GatherAndCount(firstRecorder.Registry())
	require.NoError(testInstance, gatherError)
	require.Equal(testInstance, 2, metricCount)
}

func TestRecorderWritesTextfile(testInstance *testing.T) {
	testCases := []struct {
		name        string
		path        func(testInstance *testing.T) string
		expectError bool
	}{
		{
			name: "writes_file",
			path: func(testInstance *testing.T) string {
				return filepath.Join(testInstance.TempDir(), testMetricsTextfileNameConstant)
			},
		},
		{
			name:        "empty_path",
			path:        func(*testing.T) string { return " " },
			expectError: true,
		},
		{
			name: "missing_directory",
			path: func(testInstance *testing.T) string {
				return filepath.Join(testInstance.TempDir(), "absent", testMetricsTextfileNameConstant)
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			recorder := NewRecorder()
			recorder.CommandStarted(execshell.ShellCommand{})
			recorder.CommandCompleted(execshell.ShellCommand{}, execshell.ExitStatus{})

			textfilePath := testCase.path(testInstance)
			writeError := recorder.WriteTextfile(textfilePath)
			if testCase.expectError {
				require.Error(testInstance, writeError)
				return
			}
			require.NoError(testInstance, writeError)

			content, readError := os.ReadFile(textfilePath)
			require.NoError(testInstance, readError)
			require.Contains(testInstance, string(content), "runshell_commands_started_total 1")
			require.Contains(testInstance, string(content), `runshell_commands_completed_total{outcome="success"} 1`)
		})
	}
}
