package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gi4nks/procstatus/internal/status"
)

func TestWaitStatus_Exited(t *testing.T) {
	tests := []struct {
		name string
		raw  int32
		code int
	}{
		{"success", 0x0000, 0},
		{"code 1", 0x0100, 1},
		{"code 42", 0x2a00, 42},
		{"code 255", 0xff00, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := status.UnixStatus(tt.raw)

			assert.True(t, ws.Exited())
			assert.False(t, ws.Signaled())
			assert.False(t, ws.Stopped())
			assert.False(t, ws.Continued())

			code, ok := ws.ExitCode()
			assert.True(t, ok)
			assert.Equal(t, tt.code, code)

			_, ok = ws.Signal()
			assert.False(t, ok)
		})
	}
}

func TestWaitStatus_Success(t *testing.T) {
	assert.True(t, status.UnixStatus(0).Success())
	assert.False(t, status.UnixStatus(0x0100).Success())
	assert.False(t, status.UnixStatus(9).Success())
}

func TestWaitStatus_Signaled(t *testing.T) {
	tests := []struct {
		name     string
		raw      int32
		signal   status.Signal
		coreDump bool
	}{
		{"SIGHUP", 1, status.SIGHUP, false},
		{"SIGKILL", 9, status.SIGKILL, false},
		{"SIGTERM", 15, status.SIGTERM, false},
		{"SIGSEGV with core", 0x8b, status.SIGSEGV, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := status.UnixStatus(tt.raw)

			assert.True(t, ws.Signaled())
			assert.False(t, ws.Exited())

			sig, ok := ws.Signal()
			assert.True(t, ok)
			assert.Equal(t, tt.signal, sig)
			assert.Equal(t, tt.coreDump, ws.CoreDump())

			_, ok = ws.ExitCode()
			assert.False(t, ok)
		})
	}
}

func TestWaitStatus_Stopped(t *testing.T) {
	// 0x137f is SIGSTOP in the stop-signal field over the 0x7f sentinel
	ws := status.UnixStatus(0x137f)

	assert.True(t, ws.Stopped())
	assert.False(t, ws.Exited())
	assert.False(t, ws.Signaled())
	assert.False(t, ws.Continued())

	sig, ok := ws.StopSignal()
	assert.True(t, ok)
	assert.Equal(t, status.SIGSTOP, sig)
}

func TestWaitStatus_Continued(t *testing.T) {
	ws := status.UnixStatus(0xffff)

	assert.True(t, ws.Continued())
	assert.False(t, ws.Exited())
	assert.False(t, ws.Signaled())
	assert.False(t, ws.Stopped())
}

func TestWaitStatus_Terminated(t *testing.T) {
	assert.True(t, status.UnixStatus(0).Terminated())
	assert.True(t, status.UnixStatus(9).Terminated())
	assert.False(t, status.UnixStatus(0x137f).Terminated())
	assert.False(t, status.UnixStatus(0xffff).Terminated())
}

// Classifications must be mutually exclusive: no raw value may satisfy
// more than one of exited/signaled/stopped/continued.
func TestWaitStatus_ClassificationsExclusive(t *testing.T) {
	for raw := int32(0); raw <= 0x1ffff; raw++ {
		ws := status.UnixStatus(raw)

		n := 0
		if ws.Exited() {
			n++
		}
		if ws.Signaled() {
			n++
		}
		if ws.Stopped() {
			n++
		}
		if ws.Continued() {
			n++
		}

		assert.LessOrEqual(t, n, 1, "raw %#x matched %d classifications", raw, n)
	}
}

func TestExitToRaw_RoundTrip(t *testing.T) {
	for _, code := range []status.ExitCode{
		status.ExitSuccess,
		status.ExitFailure,
		status.ExitUsage,
		status.ExitNotFound,
		255,
	} {
		ws := status.ExitToRaw(code)

		got, ok := ws.ExitCode()
		assert.True(t, ok)
		assert.Equal(t, int(code), got)

		_, ok = ws.Signal()
		assert.False(t, ok)
	}
}

func TestSignalToRaw_RoundTrip(t *testing.T) {
	for _, sig := range []status.Signal{status.SIGHUP, status.SIGKILL, status.SIGTERM, status.SIGSYS} {
		ws := status.SignalToRaw(sig, false)

		got, ok := ws.Signal()
		assert.True(t, ok)
		assert.Equal(t, sig, got)
		assert.False(t, ws.CoreDump())

		_, ok = ws.ExitCode()
		assert.False(t, ok)
	}

	ws := status.SignalToRaw(status.SIGSEGV, true)
	assert.True(t, ws.CoreDump())

	got, ok := ws.Signal()
	assert.True(t, ok)
	assert.Equal(t, status.SIGSEGV, got)
}

func TestWaitStatus_String(t *testing.T) {
	tests := []struct {
		raw      int32
		expected string
	}{
		{0, "exit status 0"},
		{0x0100, "exit status 1"},
		{9, "signal: SIGKILL"},
		{0x8b, "signal: SIGSEGV (core dumped)"},
		{0x137f, "stop signal: SIGSTOP"},
		{0xffff, "continued"},
		{0xff, "wait status 255"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, status.UnixStatus(tt.raw).String())
	}
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "SIGKILL", status.SIGKILL.String())
	assert.Equal(t, "SIGWINCH", status.SIGWINCH.String())
	assert.Equal(t, "signal 99", status.Signal(99).String())
}
