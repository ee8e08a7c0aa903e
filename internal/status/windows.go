package status

import "fmt"

// WindowsExitCode is a Windows process exit code. Windows has no signal
// concept: the raw value is the exit code, 0 means success and anything
// else means failure. A handful of NTSTATUS and Win32 values are
// recognized for diagnostic display; they are informational only and do
// not change the classification.
type WindowsExitCode uint32

const (
	// WinSuccess is the universal success code.
	WinSuccess WindowsExitCode = 0

	// WinGeneralError is the catch-all for general failures.
	WinGeneralError WindowsExitCode = 1

	// WinFileNotFound is ERROR_FILE_NOT_FOUND.
	WinFileNotFound WindowsExitCode = 2

	// WinPathNotFound is ERROR_PATH_NOT_FOUND.
	WinPathNotFound WindowsExitCode = 3

	// WinAccessDenied is ERROR_ACCESS_DENIED.
	WinAccessDenied WindowsExitCode = 5

	// WinNotEnoughMemory is ERROR_NOT_ENOUGH_MEMORY.
	WinNotEnoughMemory WindowsExitCode = 8

	// WinInvalidParameter is ERROR_INVALID_PARAMETER.
	WinInvalidParameter WindowsExitCode = 87

	// WinBrokenPipe is ERROR_BROKEN_PIPE.
	WinBrokenPipe WindowsExitCode = 109

	// WinCommandNotRecognized is returned by cmd.exe when a command is
	// not recognized as an operable program or batch file.
	WinCommandNotRecognized WindowsExitCode = 9009

	// WinAccessViolation is STATUS_ACCESS_VIOLATION.
	WinAccessViolation WindowsExitCode = 0xC0000005

	// WinStackOverflow is STATUS_STACK_OVERFLOW.
	WinStackOverflow WindowsExitCode = 0xC00000FD

	// WinControlCExit is STATUS_CONTROL_C_EXIT, set when a process dies
	// to CTRL+C or CTRL+BREAK.
	WinControlCExit WindowsExitCode = 0xC000013A
)

var windowsCodeNames = map[WindowsExitCode]string{
	WinFileNotFound:         "ERROR_FILE_NOT_FOUND",
	WinPathNotFound:         "ERROR_PATH_NOT_FOUND",
	WinAccessDenied:         "ERROR_ACCESS_DENIED",
	WinNotEnoughMemory:      "ERROR_NOT_ENOUGH_MEMORY",
	WinInvalidParameter:     "ERROR_INVALID_PARAMETER",
	WinBrokenPipe:           "ERROR_BROKEN_PIPE",
	WinCommandNotRecognized: "command not recognized",
	WinAccessViolation:      "STATUS_ACCESS_VIOLATION",
	WinStackOverflow:        "STATUS_STACK_OVERFLOW",
	WinControlCExit:         "STATUS_CONTROL_C_EXIT",
}

// WindowsStatus wraps a raw exit code. The codec is total: every uint32
// is a valid exit code.
func WindowsStatus(raw uint32) WindowsExitCode {
	return WindowsExitCode(raw)
}

// Raw returns the underlying exit code verbatim.
func (c WindowsExitCode) Raw() uint32 {
	return uint32(c)
}

// Success reports whether the code represents a successful termination.
func (c WindowsExitCode) Success() bool {
	return c == WinSuccess
}

// WellKnown returns the conventional name for recognized abnormal codes.
func (c WindowsExitCode) WellKnown() (string, bool) {
	name, ok := windowsCodeNames[c]
	return name, ok
}

func (c WindowsExitCode) String() string {
	if name, ok := c.WellKnown(); ok {
		return fmt.Sprintf("exit status %d (%s)", uint32(c), name)
	}
	return fmt.Sprintf("exit status %d", uint32(c))
}
