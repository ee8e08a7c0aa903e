package status

import "strconv"

// ExitCode is an 8-bit Unix exit code. The named constants cover the
// universal conventions (0/1/2), the sysexits.h family, and the shell
// 126/127 codes.
type ExitCode uint8

const (
	// ExitSuccess is the universal success code.
	ExitSuccess ExitCode = 0

	// ExitFailure is the catch-all for general failures.
	ExitFailure ExitCode = 1

	// ExitInvalidArgs signals misuse of command line arguments, the way
	// shell builtins use exit 2.
	ExitInvalidArgs ExitCode = 2

	// EX_* codes from sysexits.h.
	ExitUsage       ExitCode = 64
	ExitDataErr     ExitCode = 65
	ExitNoInput     ExitCode = 66
	ExitNoUser      ExitCode = 67
	ExitNoHost      ExitCode = 68
	ExitUnavailable ExitCode = 69
	ExitSoftware    ExitCode = 70
	ExitOSErr       ExitCode = 71
	ExitOSFile      ExitCode = 72
	ExitCantCreate  ExitCode = 73
	ExitIOErr       ExitCode = 74
	ExitTempFail    ExitCode = 75
	ExitProtocol    ExitCode = 76
	ExitNoPerm      ExitCode = 77
	ExitConfig      ExitCode = 78

	// ExitNotExecutable is returned by shells when a command is found
	// but cannot be executed.
	ExitNotExecutable ExitCode = 126

	// ExitNotFound is returned by shells when a command is not in PATH.
	ExitNotFound ExitCode = 127
)

// Success reports whether the code represents a successful termination.
func (c ExitCode) Success() bool {
	return c == ExitSuccess
}

func (c ExitCode) String() string {
	return strconv.Itoa(int(c))
}
