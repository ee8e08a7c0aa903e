//go:build !windows
// +build !windows

package commands

import (
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

func hostPlatform() string {
	return models.PlatformUnix
}

// rawStatus extracts the raw wait status from a finished process.
func rawStatus(ps *os.ProcessState) int64 {
	if ps == nil {
		return 0
	}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return int64(ws)
	}
	return int64(ps.ExitCode())
}

// RunPTY executes a command attached to a pseudo-terminal, so
// interactive programs behave as if run directly from the shell. The
// termination is classified the same way as Run.
func (e *Executor) RunPTY(name string, args []string) (status.Result, int64, error) {
	cmd := exec.Command(name, args...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		e.logger.Error("Failed to start command in a pty",
			zap.String("name", name),
			zap.Error(err))
		return status.Exit(int(status.ExitFailure)), 0, errors.NewError(errors.ErrExecutionFailed, "failed to start pty", err)
	}
	defer ptmx.Close()

	// Keep the pty size in sync with the controlling terminal
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	go func() {
		for range winch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				e.logger.Debug("Failed to resize pty", zap.Error(err))
			}
		}
	}()
	winch <- syscall.SIGWINCH

	go func() {
		_, _ = io.Copy(ptmx, os.Stdin)
	}()

	// The copy ends with EIO when the pty closes; that is the normal
	// end-of-session condition, not a failure.
	_, _ = io.Copy(os.Stdout, ptmx)

	waitErr := cmd.Wait()

	result, decoded := status.FromRunError(waitErr)
	if waitErr != nil && !decoded {
		return result, 0, errors.NewError(errors.ErrExecutionFailed, "failed to wait for command", waitErr)
	}

	return result, rawStatus(cmd.ProcessState), nil
}
