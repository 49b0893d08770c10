package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/runshell/lookup"
)

const (
	whichCommandUseConstant              = "which <name|path>"
	whichCommandShortDescriptionConstant = "Print the path a binary resolves to"
	whichCommandLongDescriptionConstant  = "which prints the binary that exec would run. Targets containing a path separator must name an existing file, other targets are searched in PATH."
	whichOutputTemplateConstant          = "%s\n"
	binaryResolvedMessageConstant        = "binary resolved"
	logFieldResolvedPathConstant         = "path"
	pathSeparatorCharactersConstant      = `/\`
)

// WhichCommandBuilder assembles the which command.
type WhichCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the which command.
func (builder *WhichCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   whichCommandUseConstant,
		Short: whichCommandShortDescriptionConstant,
		Long:  whichCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *WhichCommandBuilder) run(command *cobra.Command, arguments []string) error {
	binary, resolveError := resolveBinary(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	resolveProviderLogger(builder.LoggerProvider).Debug(binaryResolvedMessageConstant, zap.String(logFieldResolvedPathConstant, binary.Path()))

	_, writeError := fmt.Fprintf(command.OutOrStdout(), whichOutputTemplateConstant, binary.Path())
	return writeError
}

// resolveBinary treats targets containing a path separator as paths and
// searches PATH for everything else.
func resolveBinary(target string) (lookup.Binary, error) {
	if strings.ContainsAny(target, pathSeparatorCharactersConstant) {
		return lookup.ResolveByPath(target)
	}
	return lookup.ResolveByName(target)
}

func resolveProviderLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}

	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
