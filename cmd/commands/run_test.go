//go:build !windows
// +build !windows

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/repos/mocks"
	"github.com/gi4nks/procstatus/internal/status"
)

func TestRunCommand(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful run without store", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)

		rc := NewRunCommand(logger, mockRepo)
		rc.exitFunc = func(int) { t.Fatal("exitFunc must not be called on success") }

		err := rc.runE(rc.cmd, []string{"sh", "-c", "exit 0"})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Put")
	})

	t.Run("failed run propagates exit code", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)

		var exitCode int
		rc := NewRunCommand(logger, mockRepo)
		rc.exitFunc = func(code int) { exitCode = code }

		err := rc.runE(rc.cmd, []string{"sh", "-c", "exit 3"})
		assert.NoError(t, err)
		assert.Equal(t, 3, exitCode)
	})

	t.Run("signaled run propagates 128+signal", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)

		var exitCode int
		rc := NewRunCommand(logger, mockRepo)
		rc.exitFunc = func(code int) { exitCode = code }

		err := rc.runE(rc.cmd, []string{"sh", "-c", "kill -9 $$"})
		assert.NoError(t, err)
		assert.Equal(t, 128+int(status.SIGKILL), exitCode)
	})

	t.Run("stores observation when requested", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		mockRepo.On("Put", mock.Anything, mock.MatchedBy(func(obs models.Observation) bool {
			return obs.Name == "sh" && obs.Platform == models.PlatformUnix && obs.Success()
		})).Return(nil)

		rc := NewRunCommand(logger, mockRepo)
		rc.store = true
		rc.exitFunc = func(int) {}

		err := rc.runE(rc.cmd, []string{"sh", "-c", "exit 0"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("stores failed observation with tag", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		mockRepo.On("Put", mock.Anything, mock.MatchedBy(func(obs models.Observation) bool {
			code, ok := obs.Result.ExitCode()
			return ok && code == 7 && len(obs.Tags) == 1 && obs.Tags[0] == "ci"
		})).Return(nil)

		var exitCode int
		rc := NewRunCommand(logger, mockRepo)
		rc.store = true
		rc.tag = "ci"
		rc.exitFunc = func(code int) { exitCode = code }

		err := rc.runE(rc.cmd, []string{"sh", "-c", "exit 7"})
		assert.NoError(t, err)
		assert.Equal(t, 7, exitCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("execution failure returns error", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)

		rc := NewRunCommand(logger, mockRepo)
		rc.exitFunc = func(int) {}

		err := rc.runE(rc.cmd, []string{"/nonexistent/definitely-not-a-binary"})
		assert.Error(t, err)
	})
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 2, exitCodeFor(status.Exit(2)))
	assert.Equal(t, 137, exitCodeFor(status.Killed(status.SIGKILL)))
	assert.Equal(t, 1, exitCodeFor(status.Exit(-1)))
}
