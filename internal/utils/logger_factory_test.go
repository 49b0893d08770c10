package utils_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/runshell/internal/utils"
)

const (
	testLoggerFactoryCaseSupportedFormatConstant   = "supported_log_level_%s_format_%s"
	testLoggerFactoryCaseUnsupportedLevelConstant  = "unsupported_log_level"
	testLoggerFactoryCaseUnsupportedFormatConstant = "unsupported_log_format"
	testLoggerFactorySubtestTemplateConstant       = "%d_%s"
	testInvalidLogLevelConstant                    = "invalid"
	testInvalidLogFormatConstant                   = "invalid"
	testLogMessageConstant                         = "logger_factory_test_message"
	testConsoleMessageConstant                     = "Running sh -c true"
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name                string
		requestedLogLevel   utils.LogLevel
		requestedLogFormat  utils.LogFormat
		expectError         bool
		expectStructuredLog bool
	}{
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelDebug, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelDebug,
			requestedLogFormat:  utils.LogFormatStructured,
			expectError:         false,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatStructured,
			expectError:         false,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatConsole),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatConsole,
			expectError:         false,
			expectStructuredLog: false,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedLevelConstant,
			requestedLogLevel:  utils.LogLevel(testInvalidLogLevelConstant),
			requestedLogFormat: utils.LogFormatStructured,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedFormatConstant,
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat(testInvalidLogFormatConstant),
			expectError:        true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			loggerFactory := utils.NewLoggerFactory()

			pipeReader, pipeWriter, pipeError := os.Pipe()
			require.NoError(testInstance, pipeError)

			originalStderr := os.Stderr
			os.Stderr = pipeWriter

			logger, creationError := loggerFactory.CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)

			os.Stderr = originalStderr

			if testCase.expectError {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, logger)

				require.NoError(testInstance, pipeWriter.Close())
				require.NoError(testInstance, pipeReader.Close())
				return
			}

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, logger)

			logger.Info(testLogMessageConstant)
			syncError := logger.Sync()
			if syncError != nil {
				require.True(testInstance, errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL))
			}

			require.NoError(testInstance, pipeWriter.Close())

			capturedOutput, readError := io.ReadAll(pipeReader)
			require.NoError(testInstance, readError)
			require.NoError(testInstance, pipeReader.Close())

			trimmedOutput := bytes.TrimSpace(capturedOutput)
			require.NotEmpty(testInstance, trimmedOutput)
			require.Contains(testInstance, string(trimmedOutput), testLogMessageConstant)

			isJSONLog := json.Valid(trimmedOutput)
			if testCase.expectStructuredLog {
				require.True(testInstance, isJSONLog)
			} else {
				require.False(testInstance, isJSONLog)
			}
		})
	}
}

func TestParseLogSettings(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawLogLevel    string
		rawLogFormat   string
		expectedLevel  utils.LogLevel
		expectedFormat utils.LogFormat
		expectError    bool
	}{
		{name: "canonical", rawLogLevel: "debug", rawLogFormat: "console", expectedLevel: utils.LogLevelDebug, expectedFormat: utils.LogFormatConsole},
		{name: "mixed_case_and_spaces", rawLogLevel: " WARN ", rawLogFormat: "Structured", expectedLevel: utils.LogLevelWarn, expectedFormat: utils.LogFormatStructured},
		{name: "unknown_level", rawLogLevel: "trace", rawLogFormat: "console", expectError: true},
		{name: "unknown_format", rawLogLevel: "info", rawLogFormat: "xml", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			logLevel, levelError := utils.ParseLogLevel(testCase.rawLogLevel)
			logFormat, formatError := utils.ParseLogFormat(testCase.rawLogFormat)
			if testCase.expectError {
				require.Error(testInstance, errors.Join(levelError, formatError))
				return
			}
			require.NoError(testInstance, levelError)
			require.NoError(testInstance, formatError)
			require.Equal(testInstance, testCase.expectedLevel, logLevel)
			require.Equal(testInstance, testCase.expectedFormat, logFormat)
		})
	}
}

func TestLoggerFactoryCreateLoggerOutputs(testInstance *testing.T) {
	testCases := []struct {
		name                  string
		requestedLogFormat    utils.LogFormat
		expectHumanReadable   bool
		expectedConsoleOutput string
	}{
		{
			name:                  "console_format_renders_messages",
			requestedLogFormat:    utils.LogFormatConsole,
			expectHumanReadable:   true,
			expectedConsoleOutput: testConsoleMessageConstant + "\n",
		},
		{
			name:                  "structured_format_discards_console_messages",
			requestedLogFormat:    utils.LogFormatStructured,
			expectHumanReadable:   false,
			expectedConsoleOutput: "",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			pipeReader, pipeWriter, pipeError := os.Pipe()
			require.NoError(testInstance, pipeError)

			originalStderr := os.Stderr
			os.Stderr = pipeWriter
			loggerOutputs, creationError := utils.NewLoggerFactory().CreateLoggerOutputs(utils.LogLevelError, testCase.requestedLogFormat)
			os.Stderr = originalStderr

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, loggerOutputs.DiagnosticLogger)
			require.NotNil(testInstance, loggerOutputs.ConsoleLogger)
			require.Equal(testInstance, testCase.expectHumanReadable, loggerOutputs.HumanReadable)

			loggerOutputs.ConsoleLogger.Info(testConsoleMessageConstant)
			loggerOutputs.DiagnosticLogger.Info(testLogMessageConstant)

			require.NoError(testInstance, pipeWriter.Close())
			capturedOutput, readError := io.ReadAll(pipeReader)
			require.NoError(testInstance, readError)
			require.NoError(testInstance, pipeReader.Close())

			require.Equal(testInstance, testCase.expectedConsoleOutput, string(capturedOutput))
		})
	}
}
