package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/runshell/execshell"
	"github.com/temirov/runshell/internal/utils"
	flagutils "github.com/temirov/runshell/internal/utils/flags"
	pathutils "github.com/temirov/runshell/internal/utils/path"
)

const (
	binaryCommandUseConstant               = "exec [flags] [--] <binary> [arguments...]"
	binaryCommandShortDescriptionConstant  = "Run a binary located by path or by name"
	binaryCommandLongDescriptionConstant   = "exec runs a binary with the given arguments. Targets containing a path separator are used as paths, other targets are searched in PATH."
	shellCommandUseConstant                = "sh [flags] [--] <command line...>"
	shellCommandShortDescriptionConstant   = "Run a command line through the user's shell"
	shellCommandLongDescriptionConstant    = "sh joins its arguments into a single command line and runs it through the shell named by SHELL, or the platform default shell."
	commandLineJoinSeparatorConstant       = " "
	missingTargetMessageConstant           = "a binary or command line is required"
	outputCopyErrorTemplateConstant        = "unable to copy child output: %w"
	runConfigurationModeKeyConstant        = "mode"
	runConfigurationDirectoryKeyConstant   = "working_directory"
	runConfigurationEnvironmentKeyConstant = "environment"
	runConfigurationMetricsKeyConstant     = "metrics_textfile"
	configurationKeySeparatorConstant      = "."
	runStartedMessageConstant              = "running child"
	logFieldModeConstant                   = "mode"
	logFieldTargetConstant                 = "target"
)

var errMissingTarget = errors.New(missingTargetMessageConstant)

// RunKind selects how the run command interprets its positional arguments.
type RunKind int

const (
	// RunKindBinary treats the first argument as a binary and the rest as its arguments.
	RunKindBinary RunKind = iota
	// RunKindShell joins every argument into a command line for the user's shell.
	RunKindShell
)

// RunConfiguration holds the configurable defaults of the run commands.
type RunConfiguration struct {
	Mode             string            `mapstructure:"mode"`
	WorkingDirectory string            `mapstructure:"working_directory"`
	Environment      map[string]string `mapstructure:"environment"`
	MetricsTextfile  string            `mapstructure:"metrics_textfile"`
}

// DefaultRunConfigurationValues returns the configuration defaults keyed under prefix.
func DefaultRunConfigurationValues(prefix string) map[string]any {
	return map[string]any{
		prefix + configurationKeySeparatorConstant + runConfigurationModeKeyConstant:        flagutils.ModeAuto,
		prefix + configurationKeySeparatorConstant + runConfigurationDirectoryKeyConstant:   "",
		prefix + configurationKeySeparatorConstant + runConfigurationEnvironmentKeyConstant: "",
		prefix + configurationKeySeparatorConstant + runConfigurationMetricsKeyConstant:     "",
	}
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ObserversProvider supplies the lifecycle observers attached to every child.
type ObserversProvider func() []execshell.CommandEventObserver

// RunConfigurationProvider supplies the loaded run configuration.
type RunConfigurationProvider func() RunConfiguration

// TerminalDetector reports whether the CLI's stdout is attached to a terminal.
type TerminalDetector func() bool

// RunCommandBuilder assembles the exec and sh commands.
type RunCommandBuilder struct {
	Kind                  RunKind
	LoggerProvider        LoggerProvider
	ObserversProvider     ObserversProvider
	ConfigurationProvider RunConfigurationProvider
	TerminalDetector      TerminalDetector
	DirectoryResolver     *pathutils.WorkingDirectoryResolver
}

type runOptions struct {
	mode             string
	workingDirectory string
	environment      map[string]string
}

// Build constructs the command selected by Kind.
func (builder *RunCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   binaryCommandUseConstant,
		Short: binaryCommandShortDescriptionConstant,
		Long:  binaryCommandLongDescriptionConstant,
	}
	if builder.Kind == RunKindShell {
		command.Use = shellCommandUseConstant
		command.Short = shellCommandShortDescriptionConstant
		command.Long = shellCommandLongDescriptionConstant
	}

	flagValues := flagutils.BindExecutionFlags(command, flagutils.ModeAuto)
	command.Flags().SetInterspersed(false)
	command.RunE = func(command *cobra.Command, arguments []string) error {
		return builder.run(command, arguments, flagValues)
	}

	return command, nil
}

func (builder *RunCommandBuilder) run(command *cobra.Command, arguments []string, flagValues *flagutils.ExecutionFlagValues) error {
	if len(arguments) == 0 {
		return errMissingTarget
	}

	options, optionsError := builder.parseOptions(command, flagValues)
	if optionsError != nil {
		return optionsError
	}

	commandBuilder, commandBuilderError := builder.newCommandBuilder(arguments)
	if commandBuilderError != nil {
		return commandBuilderError
	}

	logger := resolveProviderLogger(builder.LoggerProvider)
	commandBuilder.
		SetWorkingDirectory(options.workingDirectory).
		SetEnvironment(options.environment).
		WithLogger(logger)
	for _, observer := range builder.resolveObservers() {
		commandBuilder.WithObserver(observer)
	}

	logger.Debug(
		runStartedMessageConstant,
		zap.String(logFieldModeConstant, options.mode),
		zap.Strings(logFieldTargetConstant, arguments),
	)

	if options.mode == flagutils.ModeTransparent {
		return runTransparent(commandBuilder)
	}
	return runCaptured(commandBuilder, command.OutOrStdout())
}

func (builder *RunCommandBuilder) parseOptions(command *cobra.Command, flagValues *flagutils.ExecutionFlagValues) (runOptions, error) {
	configuration := RunConfiguration{}
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	modeValue := flagutils.NewChoiceValue(flagutils.ModeAuto, flagutils.ModeChoices)
	if len(strings.TrimSpace(configuration.Mode)) > 0 {
		if modeError := modeValue.Set(configuration.Mode); modeError != nil {
			return runOptions{}, modeError
		}
	}
	if flagutils.Changed(command, flagutils.ModeFlagName) {
		modeValue = flagValues.Mode
	}

	mode := modeValue.String()
	if mode == flagutils.ModeAuto {
		mode = flagutils.ModeCaptured
		if builder.resolveTerminalDetector()() {
			mode = flagutils.ModeTransparent
		}
	}

	workingDirectory := configuration.WorkingDirectory
	if flagutils.Changed(command, flagutils.WorkingDirectoryFlagName) {
		workingDirectory = flagValues.WorkingDirectory
	}
	resolvedDirectory, directoryError := builder.resolveDirectoryResolver().Resolve(workingDirectory)
	if directoryError != nil {
		return runOptions{}, directoryError
	}

	environment := make(map[string]string, len(configuration.Environment))
	for environmentKey, environmentValue := range configuration.Environment {
		environment[environmentKey] = environmentValue
	}
	flagEnvironment, environmentError := utils.ParseEnvironmentAssignments(flagValues.EnvironmentAssignments)
	if environmentError != nil {
		return runOptions{}, environmentError
	}
	for environmentKey, environmentValue := range flagEnvironment {
		environment[environmentKey] = environmentValue
	}

	return runOptions{mode: mode, workingDirectory: resolvedDirectory, environment: environment}, nil
}

func (builder *RunCommandBuilder) newCommandBuilder(arguments []string) (*execshell.CommandBuilder, error) {
	if builder.Kind == RunKindShell {
		return execshell.NewWithShell(strings.Join(arguments, commandLineJoinSeparatorConstant))
	}

	binary, resolveError := resolveBinary(arguments[0])
	if resolveError != nil {
		return nil, resolveError
	}
	return execshell.NewWithBinary(binary, arguments[1:]...), nil
}

func (builder *RunCommandBuilder) resolveObservers() []execshell.CommandEventObserver {
	if builder.ObserversProvider == nil {
		return nil
	}
	return builder.ObserversProvider()
}

func (builder *RunCommandBuilder) resolveTerminalDetector() TerminalDetector {
	if builder.TerminalDetector != nil {
		return builder.TerminalDetector
	}
	return standardOutputIsTerminal
}

func (builder *RunCommandBuilder) resolveDirectoryResolver() *pathutils.WorkingDirectoryResolver {
	if builder.DirectoryResolver != nil {
		return builder.DirectoryResolver
	}
	return pathutils.NewWorkingDirectoryResolver(nil)
}

// runCaptured streams the child's stdout to output and reports its stderr in
// the returned error when it fails. The child's stdin is closed immediately.
func runCaptured(commandBuilder *execshell.CommandBuilder, output io.Writer) error {
	executor, spawnError := commandBuilder.SpawnCaptured()
	if spawnError != nil {
		return spawnError
	}

	_ = executor.CloseStdin()
	if _, copyError := io.Copy(output, executor); copyError != nil {
		_ = executor.CloseStdout()
		_ = executor.Wait()
		return fmt.Errorf(outputCopyErrorTemplateConstant, copyError)
	}
	return executor.Wait()
}

// runTransparent lets the child share the CLI's terminal, including stdin.
func runTransparent(commandBuilder *execshell.CommandBuilder) error {
	executor, spawnError := commandBuilder.SetStandardInput(execshell.StandardInputInherit).SpawnTransparent()
	if spawnError != nil {
		return spawnError
	}
	return executor.Wait()
}

func standardOutputIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
