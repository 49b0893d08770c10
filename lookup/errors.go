package lookup

import "fmt"

const (
	pathErrorTemplateConstant           = "%s: %s"
	pathErrorCauseTemplateConstant      = "%s: %s (%v)"
	binaryMissingReasonConstant         = "binary does not exist"
	searchPathUnreadableReasonConstant  = "search path variable is not set"
	binaryNotInSearchPathReasonConstant = "binary not found in search path"
	unknownShellReasonConstant          = "cannot get execstring arguments for unknown shell"
)

// PathError reports that a binary or shell could not be resolved.
type PathError struct {
	// Target is the path, name, or variable that failed to resolve.
	Target string
	// Reason describes the resolution failure.
	Reason string
	// Err is the underlying operating system error, if any.
	Err error
}

// Error implements the error interface.
func (pathError *PathError) Error() string {
	if pathError.Err != nil {
		return fmt.Sprintf(pathErrorCauseTemplateConstant, pathError.Reason, pathError.Target, pathError.Err)
	}
	return fmt.Sprintf(pathErrorTemplateConstant, pathError.Reason, pathError.Target)
}

// Unwrap returns the underlying error.
func (pathError *PathError) Unwrap() error {
	return pathError.Err
}
