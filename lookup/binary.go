package lookup

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvironmentLookup reads a single environment variable.
type EnvironmentLookup func(key string) (string, bool)

// Binary refers to a file that existed when it was resolved.
type Binary struct {
	path string
}

// Path returns the filesystem path of the binary.
func (binary Binary) Path() string {
	return binary.path
}

// String implements fmt.Stringer.
func (binary Binary) String() string {
	return binary.path
}

// Resolver resolves binaries and shells against an environment.
type Resolver struct {
	environmentLookup EnvironmentLookup
}

// NewResolver constructs a resolver reading variables through environmentLookup.
// A nil lookup falls back to os.LookupEnv.
func NewResolver(environmentLookup EnvironmentLookup) *Resolver {
	if environmentLookup == nil {
		environmentLookup = os.LookupEnv
	}
	return &Resolver{environmentLookup: environmentLookup}
}

var defaultResolver = NewResolver(nil)

// ResolveByPath returns a Binary for path if it names an existing regular file.
func ResolveByPath(path string) (Binary, error) {
	return defaultResolver.ResolveByPath(path)
}

// ResolveByName searches PATH for name and returns the first existing candidate.
func ResolveByName(name string) (Binary, error) {
	return defaultResolver.ResolveByName(name)
}

// ResolveByPath returns a Binary for path if it names an existing regular file.
// The search path is never consulted.
func (resolver *Resolver) ResolveByPath(path string) (Binary, error) {
	fileInfo, statError := os.Stat(path)
	if statError != nil {
		return Binary{}, &PathError{Target: path, Reason: binaryMissingReasonConstant, Err: statError}
	}
	if !fileInfo.Mode().IsRegular() {
		return Binary{}, &PathError{Target: path, Reason: binaryMissingReasonConstant}
	}
	return Binary{path: path}, nil
}

// ResolveByName searches the PATH directories in order for name, adjusted with
// the platform executable suffix, and returns the first candidate that exists.
func (resolver *Resolver) ResolveByName(name string) (Binary, error) {
	executableName := platformExecutableName(name)

	searchPath, searchPathAvailable := resolver.environmentLookup(searchPathVariableNameConstant)
	if !searchPathAvailable {
		return Binary{}, &PathError{Target: searchPathVariableNameConstant, Reason: searchPathUnreadableReasonConstant}
	}

	for _, searchDirectory := range filepath.SplitList(searchPath) {
		candidatePath := filepath.Join(searchDirectory, executableName)
		if _, statError := os.Stat(candidatePath); statError == nil {
			return Binary{path: candidatePath}, nil
		}
	}

	return Binary{}, &PathError{Target: executableName, Reason: binaryNotInSearchPathReasonConstant}
}

func platformExecutableName(name string) string {
	suffix := currentPlatform.executableSuffix
	if len(suffix) == 0 || strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}
