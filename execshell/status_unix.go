//go:build unix

package execshell

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func queryExitStatus(process *os.Process, block bool) (ExitStatus, bool, error) {
	waitOptions := unix.WNOHANG
	if block {
		waitOptions = 0
	}

	var waitStatus unix.WaitStatus
	for {
		reapedProcessIdentifier, waitError := unix.Wait4(process.Pid, &waitStatus, waitOptions, nil)
		if errors.Is(waitError, unix.EINTR) {
			continue
		}
		if waitError != nil {
			return ExitStatus{}, false, waitError
		}
		if reapedProcessIdentifier == 0 {
			return ExitStatus{}, false, nil
		}
		break
	}

	if waitStatus.Signaled() {
		return ExitStatus{Code: unknownExitCodeConstant, Signal: waitStatus.Signal().String()}, true, nil
	}
	return ExitStatus{Code: waitStatus.ExitStatus()}, true, nil
}
