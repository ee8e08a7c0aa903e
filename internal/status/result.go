package status

import (
	"encoding/json"
	"fmt"
)

// Result is the platform-independent outcome of a terminated process.
// It has exactly three shapes: success, non-zero exit, and termination
// by signal. The zero value is success, so an unobserved Result reads
// as a clean exit.
//
// Result is a pure value: immutable after construction and freely
// copyable, safe for concurrent use.
type Result struct {
	state  resultState
	code   int
	signal Signal
}

type resultState uint8

const (
	stateOk resultState = iota
	stateExited
	stateSignaled
)

// Exit builds a Result from a plain exit code. Code 0 yields the
// success shape on every platform.
func Exit(code int) Result {
	if code == 0 {
		return Result{}
	}
	return Result{state: stateExited, code: code}
}

// Killed builds a Result for a process terminated by a signal.
func Killed(sig Signal) Result {
	return Result{state: stateSignaled, signal: sig}
}

// FromUnix classifies a Unix wait status. Stopped and continued
// statuses describe a process that has not terminated; they map to a
// non-zero exit with code -1, the same "no exit code available"
// convention os.ProcessState uses.
func FromUnix(ws WaitStatus) Result {
	switch {
	case ws.Signaled():
		sig, _ := ws.Signal()
		return Killed(sig)
	case ws.Exited():
		code, _ := ws.ExitCode()
		return Exit(code)
	default:
		return Exit(-1)
	}
}

// FromWindows classifies a Windows exit code.
func FromWindows(c WindowsExitCode) Result {
	if c.Success() {
		return Result{}
	}
	return Exit(int(c.Raw()))
}

// Success reports whether the process exited cleanly with code 0.
func (r Result) Success() bool {
	return r.state == stateOk
}

// ExitCode returns the exit code for the success and non-zero exit
// shapes. There is no exit code for a signaled process.
func (r Result) ExitCode() (int, bool) {
	switch r.state {
	case stateOk:
		return 0, true
	case stateExited:
		return r.code, true
	default:
		return 0, false
	}
}

// Signal returns the terminating signal for the signaled shape. On
// platforms without signals it never reports true.
func (r Result) Signal() (Signal, bool) {
	if r.state != stateSignaled {
		return 0, false
	}
	return r.signal, true
}

// Err returns nil on success, and otherwise a structured *ExitError or
// *SignalError that callers can branch on with errors.As.
func (r Result) Err() error {
	switch r.state {
	case stateExited:
		return &ExitError{Code: r.code}
	case stateSignaled:
		return &SignalError{Signal: r.signal}
	default:
		return nil
	}
}

func (r Result) String() string {
	switch r.state {
	case stateExited:
		return fmt.Sprintf("exit status %d", r.code)
	case stateSignaled:
		return fmt.Sprintf("signal: %s", r.signal)
	default:
		return "exit status 0"
	}
}

// ExitError reports a process that terminated with a non-zero exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// SignalError reports a process that was terminated by a signal and
// therefore has no exit code.
type SignalError struct {
	Signal Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("signal: %s", e.Signal)
}

const (
	stateNameOk       = "ok"
	stateNameExited   = "exited"
	stateNameSignaled = "signaled"
)

type resultJSON struct {
	State  string `json:"state"`
	Code   *int   `json:"code,omitempty"`
	Signal *int   `json:"signal,omitempty"`
}

// MarshalJSON encodes the Result as a tagged object, one field per
// shape: {"state":"ok"}, {"state":"exited","code":N} or
// {"state":"signaled","signal":N}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{State: stateNameOk}
	switch r.state {
	case stateExited:
		out.State = stateNameExited
		code := r.code
		out.Code = &code
	case stateSignaled:
		out.State = stateNameSignaled
		sig := int(r.signal)
		out.Signal = &sig
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged object produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.State {
	case stateNameOk:
		*r = Result{}
	case stateNameExited:
		if in.Code == nil {
			return fmt.Errorf("result state %q requires a code", in.State)
		}
		*r = Exit(*in.Code)
	case stateNameSignaled:
		if in.Signal == nil {
			return fmt.Errorf("result state %q requires a signal", in.State)
		}
		*r = Killed(Signal(*in.Signal))
	default:
		return fmt.Errorf("unknown result state %q", in.State)
	}
	return nil
}
