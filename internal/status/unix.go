// Package status decodes and classifies process termination statuses.
//
// The package is cross-platform by construction: both the Unix wait-status
// codec and the Windows exit-code codec compile and work everywhere, so a
// status recorded on one platform can be interpreted on another. Only the
// conversions from the host's own process handles are build-tagged.
package status

import (
	"fmt"
)

// WaitStatus is a Unix wait status as returned by wait(2) and friends,
// using the packing convention shared by Linux and the BSDs: the low 7
// bits carry the terminating signal (0 when the process exited normally),
// bit 7 flags a core dump, and the next 8 bits carry the exit code or the
// stop signal. The bit patterns 0x7f (low byte) and 0xffff are reserved
// for the stopped and continued job-control states.
type WaitStatus int32

const (
	signalMask  = 0x7f
	coreFlag    = 0x80
	exitShift   = 8
	stoppedByte = 0x7f
	continuedW  = 0xffff
)

// UnixStatus wraps a raw wait status. Decoding is total: every bit
// pattern has a well-defined interpretation through the accessors.
func UnixStatus(raw int32) WaitStatus {
	return WaitStatus(raw)
}

// Raw returns the underlying status value verbatim.
func (w WaitStatus) Raw() int32 {
	return int32(w)
}

// Exited reports whether the process terminated normally via exit(2).
func (w WaitStatus) Exited() bool {
	return w&signalMask == 0
}

// Success reports whether the process exited normally with code 0.
func (w WaitStatus) Success() bool {
	return w.Exited() && w.exitCode() == 0
}

// ExitCode returns the 8-bit exit code when the process exited normally.
// The code is taken unsigned (0-255), never sign extended.
func (w WaitStatus) ExitCode() (int, bool) {
	if !w.Exited() {
		return 0, false
	}
	return w.exitCode(), true
}

func (w WaitStatus) exitCode() int {
	return int((w >> exitShift) & 0xff)
}

// Signaled reports whether the process was terminated by a signal.
func (w WaitStatus) Signaled() bool {
	sig := w & signalMask
	return sig != 0 && sig != stoppedByte
}

// Signal returns the terminating signal when the process was killed by one.
func (w WaitStatus) Signal() (Signal, bool) {
	if !w.Signaled() {
		return 0, false
	}
	return Signal(w & signalMask), true
}

// CoreDump reports whether a terminating signal produced a core dump.
// Only meaningful when Signaled is true.
func (w WaitStatus) CoreDump() bool {
	return w.Signaled() && w&coreFlag != 0
}

// Stopped reports whether the status describes a process stopped by a
// signal. A stopped process has not terminated.
func (w WaitStatus) Stopped() bool {
	return w&0xff == stoppedByte
}

// StopSignal returns the signal that stopped the process.
func (w WaitStatus) StopSignal() (Signal, bool) {
	if !w.Stopped() {
		return 0, false
	}
	return Signal((w >> exitShift) & 0xff), true
}

// Continued reports whether the status describes a stopped process that
// was resumed with SIGCONT.
func (w WaitStatus) Continued() bool {
	return int32(w) == continuedW
}

// Terminated reports whether the status describes an actual termination,
// as opposed to the stopped/continued job-control states.
func (w WaitStatus) Terminated() bool {
	return w.Exited() || w.Signaled()
}

// ExitToRaw encodes a normal termination with the given exit code into
// its raw wait-status representation.
func ExitToRaw(code ExitCode) WaitStatus {
	return WaitStatus(int32(code) << exitShift)
}

// SignalToRaw encodes a termination by signal into its raw wait-status
// representation.
func SignalToRaw(sig Signal, coreDump bool) WaitStatus {
	raw := int32(sig) & signalMask
	if coreDump {
		raw |= coreFlag
	}
	return WaitStatus(raw)
}

func (w WaitStatus) String() string {
	switch {
	case w.Exited():
		return fmt.Sprintf("exit status %d", w.exitCode())
	case w.Signaled():
		sig, _ := w.Signal()
		if w.CoreDump() {
			return fmt.Sprintf("signal: %s (core dumped)", sig)
		}
		return fmt.Sprintf("signal: %s", sig)
	case w.Stopped():
		sig, _ := w.StopSignal()
		return fmt.Sprintf("stop signal: %s", sig)
	case w.Continued():
		return "continued"
	default:
		return fmt.Sprintf("wait status %d", int32(w))
	}
}
