package pathutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	workingDirectoryMissingTemplateConstant = "working directory %s: %w"
	workingDirectoryNotDirectoryTemplate    = "working directory %s is not a directory"
)

// WorkingDirectoryResolver turns user supplied working directories into
// absolute paths of existing directories.
type WorkingDirectoryResolver struct {
	homeExpander *HomeExpander
}

// NewWorkingDirectoryResolver constructs a resolver. A nil expander uses the
// operating system home directory.
func NewWorkingDirectoryResolver(homeExpander *HomeExpander) *WorkingDirectoryResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &WorkingDirectoryResolver{homeExpander: homeExpander}
}

// Resolve expands "~", makes candidatePath absolute and checks that it is a
// directory. A blank candidate resolves to an empty string, meaning the
// parent's working directory is inherited.
func (resolver *WorkingDirectoryResolver) Resolve(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return "", nil
	}

	absolutePath, absoluteError := filepath.Abs(resolver.homeExpander.Expand(trimmedPath))
	if absoluteError != nil {
		return "", fmt.Errorf(workingDirectoryMissingTemplateConstant, trimmedPath, absoluteError)
	}

	fileInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		return "", fmt.Errorf(workingDirectoryMissingTemplateConstant, absolutePath, statError)
	}
	if !fileInfo.IsDir() {
		return "", fmt.Errorf(workingDirectoryNotDirectoryTemplate, absolutePath)
	}

	return absolutePath, nil
}
