package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/repos/mocks"
)

func TestBaseCommand(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cmd := &cobra.Command{Use: "test"}

	t.Run("with repository", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		bc := NewBaseCommand(cmd, logger, mockRepo)

		assert.Equal(t, cmd, bc.Command())
		assert.Equal(t, logger, bc.Logger())
		assert.True(t, bc.HasRepository())
		assert.Equal(t, mockRepo, bc.Repository())
	})

	t.Run("without repository", func(t *testing.T) {
		bc := NewBaseCommandWithoutRepo(cmd, logger)

		assert.False(t, bc.HasRepository())
		assert.Nil(t, bc.Repository())
	})
}
