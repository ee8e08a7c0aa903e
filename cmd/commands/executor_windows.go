//go:build windows
// +build windows

package commands

import (
	"os"

	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

func hostPlatform() string {
	return models.PlatformWindows
}

// rawStatus extracts the raw exit code from a finished process.
func rawStatus(ps *os.ProcessState) int64 {
	if ps == nil {
		return 0
	}
	return int64(uint32(ps.ExitCode()))
}

// RunPTY falls back to a plain run; there is no pty on Windows.
func (e *Executor) RunPTY(name string, args []string) (status.Result, int64, error) {
	return e.Run(name, args)
}
