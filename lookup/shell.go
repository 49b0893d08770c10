package lookup

import "path/filepath"

// Shell is the command shell used to execute inline command lines.
type Shell struct {
	binary Binary
}

// ResolveShell returns the preferred user shell.
func ResolveShell() (Shell, error) {
	return defaultResolver.ResolveShell()
}

// ResolveShell reads SHELL and validates it as a path. When SHELL is unset the
// platform default shell is looked up in PATH instead.
func (resolver *Resolver) ResolveShell() (Shell, error) {
	preferredShell, preferredShellAvailable := resolver.environmentLookup(preferredShellVariableNameConstant)
	if preferredShellAvailable {
		binary, resolveError := resolver.ResolveByPath(preferredShell)
		if resolveError != nil {
			return Shell{}, resolveError
		}
		return Shell{binary: binary}, nil
	}

	binary, resolveError := resolver.ResolveByName(currentPlatform.defaultShellName)
	if resolveError != nil {
		return Shell{}, resolveError
	}
	return Shell{binary: binary}, nil
}

// Binary returns the shell executable.
func (shell Shell) Binary() Binary {
	return shell.binary
}

// Name returns the file name of the shell executable.
func (shell Shell) Name() string {
	return filepath.Base(shell.binary.path)
}

// String implements fmt.Stringer.
func (shell Shell) String() string {
	return shell.binary.path
}

// ExecstringArguments returns the arguments that make the shell execute the
// next argument as a command line. The lookup is by exact file name.
func (shell Shell) ExecstringArguments() ([]string, error) {
	shellName := shell.Name()
	arguments, known := execstringArgumentTable[shellName]
	if !known {
		return nil, &PathError{Target: shellName, Reason: unknownShellReasonConstant}
	}
	return append([]string(nil), arguments...), nil
}
