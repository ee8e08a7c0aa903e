package commands

import (
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/status"
)

// Executor runs commands and classifies their termination. It does not
// capture output; the child inherits the caller's stdio and only the
// wait status is observed.
type Executor struct {
	logger *zap.Logger
}

// NewExecutor creates a new Executor instance.
func NewExecutor(logger *zap.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// IsTerminal checks if the current stdin is a TTY.
func (e *Executor) IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

// Run executes a command and returns its classified termination along
// with the raw platform status. The error is non-nil only when the
// command could not be run at all (e.g. binary not found); a non-zero
// exit or a signal is reported through the Result, not the error.
func (e *Executor) Run(name string, args []string) (status.Result, int64, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()

	result, decoded := status.FromRunError(err)
	if err != nil && !decoded {
		e.logger.Error("Command could not be executed",
			zap.String("name", name),
			zap.Error(err))
		return result, 0, errors.NewError(errors.ErrExecutionFailed, "failed to execute command", err)
	}

	return result, rawStatus(cmd.ProcessState), nil
}
