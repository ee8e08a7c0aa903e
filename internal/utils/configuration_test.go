package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/gi4nks/procstatus/internal/utils"
)

func TestNewConfiguration_Defaults(t *testing.T) {
	logger := zaptest.NewLogger(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	config := utils.NewConfiguration(logger)

	assert.NotEmpty(t, config.RepositoryDirectory)
	assert.True(t, strings.HasSuffix(config.RepositoryDirectory, ".procstatus"))
	assert.Equal(t, "procstatus.db", config.RepositoryFile)
	assert.Equal(t, 10, config.LastCountDefault)
	assert.False(t, config.DebugMode)
}

func TestNewConfiguration_FromFile(t *testing.T) {
	logger := zaptest.NewLogger(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	content := "repository:\n  file: custom.db\nlast:\n  count: 25\ndebug: true\n"
	err := os.WriteFile(filepath.Join(home, ".procstatus.yaml"), []byte(content), 0644)
	assert.NoError(t, err)

	config := utils.NewConfiguration(logger)

	assert.Equal(t, "custom.db", config.RepositoryFile)
	assert.Equal(t, 25, config.LastCountDefault)
	assert.True(t, config.DebugMode)
}

func TestConfiguration_RepositoryFullName(t *testing.T) {
	logger := zaptest.NewLogger(t)

	config := utils.NewConfiguration(logger)
	full := config.RepositoryFullName()

	assert.True(t, strings.HasPrefix(full, config.RepositoryDirectory))
	assert.True(t, strings.HasSuffix(full, config.RepositoryFile))
}

func TestConfiguration_String(t *testing.T) {
	logger := zaptest.NewLogger(t)

	config := utils.NewConfiguration(logger)
	s := config.String()

	assert.Contains(t, s, "repositoryDirectory")
	assert.Contains(t, s, config.RepositoryFile)
}
