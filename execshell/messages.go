package execshell

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	startedMessageTemplateConstant            = "Running %s"
	successMessageTemplateConstant            = "Completed %s"
	failureMessageTemplateConstant            = "%s failed with exit code %d"
	signalMessageTemplateConstant             = "%s terminated by signal %s"
	executionFailureTemplateConstant          = "%s failed: %s"
	workingDirectorySuffixTemplateConstant    = " (in %s)"
	commandArgumentsJoinSeparatorConstant     = " "
	unknownFailureMessageConstant             = "unknown error"
	quotedArgumentTemplateConstant            = "%q"
	argumentCharactersRequiringQuotesConstant = " \t\n\"'"
)

// CommandMessageFormatter builds human-readable messages for child lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a spawned child.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return fmt.Sprintf(startedMessageTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildSuccessMessage formats the message describing a child that exited successfully.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return fmt.Sprintf(successMessageTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildFailureMessage formats the message describing a child that exited unsuccessfully.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, status ExitStatus) string {
	if len(status.Signal) > 0 {
		return fmt.Sprintf(signalMessageTemplateConstant, formatter.formatCommandLabel(command), status.Signal)
	}
	return fmt.Sprintf(failureMessageTemplateConstant, formatter.formatCommandLabel(command), status.Code)
}

// BuildExecutionFailureMessage formats the message describing a spawn or status query failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(executionFailureTemplateConstant, formatter.formatCommandLabel(command), failureMessage)
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{filepath.Base(command.Executable)}
	for _, argument := range command.Details.Arguments {
		commandParts = append(commandParts, formatter.formatArgument(argument))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return commandLabel
	}
	return commandLabel + fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatArgument(argument string) string {
	if len(argument) == 0 || strings.ContainsAny(argument, argumentCharactersRequiringQuotesConstant) {
		return fmt.Sprintf(quotedArgumentTemplateConstant, argument)
	}
	return argument
}
