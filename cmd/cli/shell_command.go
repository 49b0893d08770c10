package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/runshell/lookup"
)

const (
	shellDescribeCommandUseConstant              = "shell"
	shellDescribeCommandShortDescriptionConstant = "Describe the shell used for command lines"
	shellDescribeCommandLongDescriptionConstant  = "shell prints, as YAML, the shell that sh would use and the arguments that make it execute a single command line."
	shellResolvedMessageConstant                 = "shell resolved"
	yamlIndentationConstant                      = 2
)

// ShellDescription is the YAML document printed by the shell command.
type ShellDescription struct {
	Path                string   `yaml:"path"`
	Name                string   `yaml:"name"`
	ExecstringArguments []string `yaml:"execstring_arguments"`
}

// ShellCommandBuilder assembles the shell command.
type ShellCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the shell command.
func (builder *ShellCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   shellDescribeCommandUseConstant,
		Short: shellDescribeCommandShortDescriptionConstant,
		Long:  shellDescribeCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ShellCommandBuilder) run(command *cobra.Command, _ []string) error {
	shell, resolveError := lookup.ResolveShell()
	if resolveError != nil {
		return resolveError
	}

	execstringArguments, argumentsError := shell.ExecstringArguments()
	if argumentsError != nil {
		return argumentsError
	}

	resolveProviderLogger(builder.LoggerProvider).Debug(shellResolvedMessageConstant, zap.String(logFieldResolvedPathConstant, shell.String()))

	encoder := yaml.NewEncoder(command.OutOrStdout())
	encoder.SetIndent(yamlIndentationConstant)
	if encodeError := encoder.Encode(ShellDescription{
		Path:                shell.String(),
		Name:                shell.Name(),
		ExecstringArguments: execstringArguments,
	}); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}
