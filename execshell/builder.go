package execshell

import (
	"os"
	"os/exec"
	"sort"

	"go.uber.org/zap"

	"github.com/temirov/runshell/lookup"
)

const (
	environmentAssignmentSeparatorConstant = "="
	childSpawnFailedMessageConstant        = "child spawn failed"
)

// StandardInputPolicy selects how a transparent child receives stdin.
type StandardInputPolicy int

const (
	// StandardInputInherit connects the child to the parent's stdin.
	StandardInputInherit StandardInputPolicy = iota
	// StandardInputNull connects the child to the null device.
	StandardInputNull
	// StandardInputPiped connects the child to a pipe the executor closes on
	// CloseStdin or Wait.
	StandardInputPiped
)

// CommandBuilder accumulates the binary, arguments, working directory and
// environment of a child process. Nothing touches the operating system until
// one of the Spawn methods is called, and a builder spawns at most once.
type CommandBuilder struct {
	binary               lookup.Binary
	arguments            []string
	workingDirectory     string
	environmentVariables map[string]string
	standardInputPolicy  StandardInputPolicy
	logger               *zap.Logger
	observers            commandEventObservers
	consumed             bool
}

// NewWithPath creates a builder for the binary at path. PATH is not searched.
func NewWithPath(path string, arguments ...string) (*CommandBuilder, error) {
	binary, resolveError := lookup.ResolveByPath(path)
	if resolveError != nil {
		return nil, resolveError
	}
	return NewWithBinary(binary, arguments...), nil
}

// NewWithName creates a builder for the first binary called name found in PATH.
func NewWithName(name string, arguments ...string) (*CommandBuilder, error) {
	binary, resolveError := lookup.ResolveByName(name)
	if resolveError != nil {
		return nil, resolveError
	}
	return NewWithBinary(binary, arguments...), nil
}

// NewWithShell creates a builder that runs commandLine through the user's shell.
func NewWithShell(commandLine string) (*CommandBuilder, error) {
	shell, resolveError := lookup.ResolveShell()
	if resolveError != nil {
		return nil, resolveError
	}
	return NewWithShellBinary(shell, commandLine)
}

// NewWithShellBinary creates a builder that runs commandLine through shell.
func NewWithShellBinary(shell lookup.Shell, commandLine string) (*CommandBuilder, error) {
	execstringArguments, argumentsError := shell.ExecstringArguments()
	if argumentsError != nil {
		return nil, argumentsError
	}
	return NewWithBinary(shell.Binary(), append(execstringArguments, commandLine)...), nil
}

// NewWithBinary creates a builder for an already resolved binary.
func NewWithBinary(binary lookup.Binary, arguments ...string) *CommandBuilder {
	return &CommandBuilder{
		binary:               binary,
		arguments:            append([]string(nil), arguments...),
		environmentVariables: make(map[string]string),
		logger:               zap.NewNop(),
	}
}

// SetWorkingDirectory sets the child's working directory.
func (builder *CommandBuilder) SetWorkingDirectory(workingDirectory string) *CommandBuilder {
	builder.workingDirectory = workingDirectory
	return builder
}

// SetEnvironment merges environmentVariables into the child's environment
// overrides. Later values replace earlier ones for the same key.
func (builder *CommandBuilder) SetEnvironment(environmentVariables map[string]string) *CommandBuilder {
	for environmentKey, environmentValue := range environmentVariables {
		builder.environmentVariables[environmentKey] = environmentValue
	}
	return builder
}

// SetEnvironmentVariable sets a single environment override for the child.
func (builder *CommandBuilder) SetEnvironmentVariable(key string, value string) *CommandBuilder {
	builder.environmentVariables[key] = value
	return builder
}

// SetStandardInput selects the stdin policy used by SpawnTransparent.
// SpawnCaptured always pipes stdin.
func (builder *CommandBuilder) SetStandardInput(policy StandardInputPolicy) *CommandBuilder {
	builder.standardInputPolicy = policy
	return builder
}

// WithLogger attaches a diagnostic logger. A nil logger disables logging.
func (builder *CommandBuilder) WithLogger(logger *zap.Logger) *CommandBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	builder.logger = logger
	return builder
}

// WithObserver attaches a lifecycle observer. Nil observers are ignored.
func (builder *CommandBuilder) WithObserver(observer CommandEventObserver) *CommandBuilder {
	if observer != nil {
		builder.observers = append(builder.observers, observer)
	}
	return builder
}

// ShellCommand describes the child the builder would spawn.
func (builder *CommandBuilder) ShellCommand() ShellCommand {
	environmentVariables := make(map[string]string, len(builder.environmentVariables))
	for environmentKey, environmentValue := range builder.environmentVariables {
		environmentVariables[environmentKey] = environmentValue
	}

	return ShellCommand{
		Executable: builder.binary.Path(),
		Details: CommandDetails{
			Arguments:            append([]string(nil), builder.arguments...),
			WorkingDirectory:     builder.workingDirectory,
			EnvironmentVariables: environmentVariables,
		},
	}
}

// SpawnCaptured starts the child with stdin, stdout and stderr piped through
// the returned executor.
func (builder *CommandBuilder) SpawnCaptured() (*CapturingExecutor, error) {
	if consumeError := builder.consume(); consumeError != nil {
		return nil, consumeError
	}

	standardInput, standardInputError := newPipePair(pipeDirectionToChild)
	if standardInputError != nil {
		return nil, builder.spawnFailure(standardInputError)
	}
	standardOutput, standardOutputError := newPipePair(pipeDirectionFromChild)
	if standardOutputError != nil {
		standardInput.closeAll()
		return nil, builder.spawnFailure(standardOutputError)
	}
	standardError, standardErrorError := newPipePair(pipeDirectionFromChild)
	if standardErrorError != nil {
		standardInput.closeAll()
		standardOutput.closeAll()
		return nil, builder.spawnFailure(standardErrorError)
	}

	command := builder.buildCommand()
	command.Stdin = standardInput.childEnd
	command.Stdout = standardOutput.childEnd
	command.Stderr = standardError.childEnd

	startError := command.Start()
	standardInput.closeChildEnd()
	standardOutput.closeChildEnd()
	standardError.closeChildEnd()
	if startError != nil {
		standardInput.closeAll()
		standardOutput.closeAll()
		standardError.closeAll()
		return nil, builder.spawnFailure(startError)
	}

	return &CapturingExecutor{
		child:          newChildProcess(builder.ShellCommand(), command.Process, builder.logger, builder.resolveObserver()),
		standardInput:  standardInput.parentEnd,
		standardOutput: standardOutput.parentEnd,
		standardError:  standardError.parentEnd,
	}, nil
}

// SpawnTransparent starts the child with stdout and stderr inherited from the
// parent and stdin wired according to the builder's StandardInputPolicy.
func (builder *CommandBuilder) SpawnTransparent() (*TransparentExecutor, error) {
	if consumeError := builder.consume(); consumeError != nil {
		return nil, consumeError
	}

	command := builder.buildCommand()
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	var standardInput pipePair
	switch builder.standardInputPolicy {
	case StandardInputInherit:
		command.Stdin = os.Stdin
	case StandardInputNull:
		command.Stdin = nil
	case StandardInputPiped:
		var pipeError error
		standardInput, pipeError = newPipePair(pipeDirectionToChild)
		if pipeError != nil {
			return nil, builder.spawnFailure(pipeError)
		}
		command.Stdin = standardInput.childEnd
	}

	startError := command.Start()
	standardInput.closeChildEnd()
	if startError != nil {
		standardInput.closeAll()
		return nil, builder.spawnFailure(startError)
	}

	return &TransparentExecutor{
		child:         newChildProcess(builder.ShellCommand(), command.Process, builder.logger, builder.resolveObserver()),
		standardInput: standardInput.parentEnd,
	}, nil
}

func (builder *CommandBuilder) consume() error {
	if builder.consumed {
		return ErrBuilderConsumed
	}
	builder.consumed = true
	return nil
}

// buildCommand assembles the exec.Cmd directly so the resolved path is used
// verbatim instead of being searched in PATH a second time.
func (builder *CommandBuilder) buildCommand() *exec.Cmd {
	executablePath := builder.binary.Path()
	command := &exec.Cmd{
		Path: executablePath,
		Args: append([]string{executablePath}, builder.arguments...),
		Dir:  builder.workingDirectory,
	}

	if len(builder.environmentVariables) > 0 {
		command.Env = builder.mergedEnvironment()
	}

	return command
}

// mergedEnvironment appends the overrides to the inherited environment in
// sorted key order. os/exec keeps the last value of a duplicated key.
func (builder *CommandBuilder) mergedEnvironment() []string {
	environmentKeys := make([]string, 0, len(builder.environmentVariables))
	for environmentKey := range builder.environmentVariables {
		environmentKeys = append(environmentKeys, environmentKey)
	}
	sort.Strings(environmentKeys)

	mergedEnvironment := append([]string{}, os.Environ()...)
	for _, environmentKey := range environmentKeys {
		mergedEnvironment = append(mergedEnvironment, environmentKey+environmentAssignmentSeparatorConstant+builder.environmentVariables[environmentKey])
	}
	return mergedEnvironment
}

func (builder *CommandBuilder) resolveObserver() CommandEventObserver {
	if len(builder.observers) == 0 {
		return noopCommandEventObserver{}
	}
	return builder.observers
}

func (builder *CommandBuilder) spawnFailure(spawnError error) error {
	command := builder.ShellCommand()
	execError := &ExecError{Executable: command.Executable, ExitCode: unknownExitCodeConstant, Err: spawnError}

	builder.logger.Debug(
		childSpawnFailedMessageConstant,
		zap.String(logFieldExecutableConstant, command.Executable),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.Error(spawnError),
	)
	builder.resolveObserver().CommandExecutionFailed(command, execError)

	return execError
}
