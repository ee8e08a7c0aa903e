package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
)

func TestDecodeCommand(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("decodes unix statuses", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "unix"

		err := dc.runE(dc.cmd, []string{"0", "256", "9", "0x8b"})
		assert.NoError(t, err)
	})

	t.Run("decodes windows codes", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "windows"

		err := dc.runE(dc.cmd, []string{"0", "1", "9009", "0xC0000005"})
		assert.NoError(t, err)
	})

	t.Run("decodes as json", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "unix"
		dc.asJSON = true

		err := dc.runE(dc.cmd, []string{"256"})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "plan9"

		err := dc.runE(dc.cmd, []string{"0"})
		assert.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "unix"

		err := dc.runE(dc.cmd, []string{"not-a-number"})
		assert.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})

	t.Run("rejects out of range unix status", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "unix"

		err := dc.runE(dc.cmd, []string{"4294967296"})
		assert.Error(t, err)
	})

	t.Run("rejects negative windows code", func(t *testing.T) {
		dc := NewDecodeCommand(logger)
		dc.platform = "windows"

		err := dc.runE(dc.cmd, []string{"-1"})
		assert.Error(t, err)
	})
}

func TestDecodeCommand_ResolvePlatform(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	dc := NewDecodeCommand(logger)

	platform, err := dc.resolvePlatform()
	assert.NoError(t, err)
	assert.Contains(t, []string{"unix", "windows"}, platform)
}
