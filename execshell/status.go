package execshell

import (
	"fmt"
	"os"
)

const (
	exitStatusCodeTemplateConstant   = "exit code %d"
	exitStatusSignalTemplateConstant = "signal %s"
)

// ExitStatus is the terminal status of a child process.
type ExitStatus struct {
	// Code is the exit code, or -1 when the child was terminated by a signal.
	Code int
	// Signal names the terminating signal, if any.
	Signal string
}

// Success reports whether the child exited with code zero.
func (status ExitStatus) Success() bool {
	return status.Code == 0 && len(status.Signal) == 0
}

// String implements fmt.Stringer.
func (status ExitStatus) String() string {
	if len(status.Signal) > 0 {
		return fmt.Sprintf(exitStatusSignalTemplateConstant, status.Signal)
	}
	return fmt.Sprintf(exitStatusCodeTemplateConstant, status.Code)
}

// exitStatusQuery asks the operating system for the status of process. When
// block is false it returns immediately with exited set to false for a child
// that is still running. A reported status means the child has been reaped.
type exitStatusQuery func(process *os.Process, block bool) (status ExitStatus, exited bool, err error)
