//go:build !unix && !windows

package execshell

import (
	"errors"
	"os"
)

var errStatusQueryUnsupported = errors.New("child status queries are not supported on this platform")

func queryExitStatus(*os.Process, bool) (ExitStatus, bool, error) {
	return ExitStatus{}, false, errStatusQueryUnsupported
}
