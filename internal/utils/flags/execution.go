// Package flags binds the shared child execution flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// ModeFlagName selects how the child's standard streams are wired.
	ModeFlagName = "mode"
	// ModeFlagDescription describes the mode flag purpose.
	ModeFlagDescription = "Stream wiring: transparent inherits the terminal, captured pipes output through runshell, auto picks transparent on a terminal."
	// WorkingDirectoryFlagName sets the child's working directory.
	WorkingDirectoryFlagName = "dir"
	// WorkingDirectoryFlagUsage describes the working directory flag purpose.
	WorkingDirectoryFlagUsage = "Working directory for the child process (supports ~)"
	// EnvironmentFlagName adds environment overrides for the child.
	EnvironmentFlagName = "env"
	// EnvironmentFlagShorthand provides the shorthand for the environment flag.
	EnvironmentFlagShorthand = "e"
	// EnvironmentFlagUsage describes the environment flag purpose.
	EnvironmentFlagUsage = "Environment override KEY=VALUE for the child process (repeatable)"
	// ModeAuto picks transparent mode when attached to a terminal.
	ModeAuto = "auto"
	// ModeCaptured pipes every stream through the parent.
	ModeCaptured = "captured"
	// ModeTransparent lets the child write directly to the parent's streams.
	ModeTransparent = "transparent"
)

// ModeChoices lists the accepted values of the mode flag.
var ModeChoices = []string{ModeAuto, ModeCaptured, ModeTransparent}

// ExecutionFlagValues stores the values bound by BindExecutionFlags.
type ExecutionFlagValues struct {
	Mode                   *ChoiceValue
	WorkingDirectory       string
	EnvironmentAssignments []string
}

// BindExecutionFlags attaches the mode, working directory and environment
// flags to command using local scope.
func BindExecutionFlags(command *cobra.Command, defaultMode string) *ExecutionFlagValues {
	values := &ExecutionFlagValues{Mode: NewChoiceValue(defaultMode, ModeChoices)}
	if command == nil {
		return values
	}

	flagSet := command.Flags()
	flagSet.Var(values.Mode, ModeFlagName, FormatChoiceUsage(defaultMode, ModeChoices, ModeFlagDescription))
	flagSet.StringVar(&values.WorkingDirectory, WorkingDirectoryFlagName, "", WorkingDirectoryFlagUsage)
	flagSet.StringArrayVarP(&values.EnvironmentAssignments, EnvironmentFlagName, EnvironmentFlagShorthand, nil, EnvironmentFlagUsage)

	return values
}

// Changed reports whether the named flag was set on the command line.
func Changed(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}
	for _, flagSet := range []*pflag.FlagSet{command.Flags(), command.InheritedFlags()} {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}
	return false
}
