//go:build !windows
// +build !windows

package status

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// FromProcessState classifies the termination described by a host
// process handle, preserving signal information where the wait status
// is available.
func FromProcessState(ps *os.ProcessState) Result {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return FromUnix(UnixStatus(int32(ws)))
	}
	return Exit(ps.ExitCode())
}

// FromRunError classifies the error returned by exec.Cmd.Run or Wait.
// The second return value reports whether a platform status could be
// decoded; when it is false the error did not come from a terminated
// process (e.g. the command never started) and the Result defaults to
// a general failure.
func FromRunError(err error) (Result, bool) {
	if err == nil {
		return Result{}, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ProcessState != nil {
		return FromProcessState(exitErr.ProcessState), true
	}
	return Exit(int(ExitFailure)), false
}
