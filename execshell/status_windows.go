//go:build windows

package execshell

import (
	"os"

	"golang.org/x/sys/windows"
)

const processQueryAccessConstant = windows.SYNCHRONIZE | windows.PROCESS_QUERY_LIMITED_INFORMATION

func queryExitStatus(process *os.Process, block bool) (ExitStatus, bool, error) {
	processHandle, openError := windows.OpenProcess(processQueryAccessConstant, false, uint32(process.Pid))
	if openError != nil {
		return ExitStatus{}, false, openError
	}
	defer windows.CloseHandle(processHandle)

	waitMilliseconds := uint32(0)
	if block {
		waitMilliseconds = windows.INFINITE
	}

	waitEvent, waitError := windows.WaitForSingleObject(processHandle, waitMilliseconds)
	if waitError != nil {
		return ExitStatus{}, false, waitError
	}
	if waitEvent == uint32(windows.WAIT_TIMEOUT) {
		return ExitStatus{}, false, nil
	}

	var exitCode uint32
	if exitCodeError := windows.GetExitCodeProcess(processHandle, &exitCode); exitCodeError != nil {
		return ExitStatus{}, false, exitCodeError
	}
	return ExitStatus{Code: int(exitCode)}, true, nil
}
