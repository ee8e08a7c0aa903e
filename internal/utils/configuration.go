package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Configuration struct {
	logger              *zap.Logger
	RepositoryDirectory string
	RepositoryFile      string
	LastCountDefault    int
	DebugMode           bool
}

// NewConfiguration builds the configuration from defaults overridden by
// ~/.procstatus.yaml when present.
func NewConfiguration(logger *zap.Logger) *Configuration {
	c := &Configuration{
		logger:           logger,
		LastCountDefault: 10,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed to get home directory", zap.Error(err))
		c.RepositoryDirectory = filepath.Join(os.TempDir(), ".procstatus")
		home = os.TempDir()
	} else {
		c.RepositoryDirectory = filepath.Join(home, ".procstatus")
	}

	c.RepositoryFile = "procstatus.db"
	c.loadFile(home)
	return c
}

func (c *Configuration) loadFile(home string) {
	v := viper.New()
	v.SetConfigName(".procstatus")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)

	v.SetDefault("repository.directory", c.RepositoryDirectory)
	v.SetDefault("repository.file", c.RepositoryFile)
	v.SetDefault("last.count", c.LastCountDefault)
	v.SetDefault("debug", c.DebugMode)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			c.logger.Warn("Failed to read configuration file", zap.Error(err))
		}
		return
	}

	c.RepositoryDirectory = v.GetString("repository.directory")
	c.RepositoryFile = v.GetString("repository.file")
	c.LastCountDefault = v.GetInt("last.count")
	c.DebugMode = v.GetBool("debug")

	c.logger.Debug("Configuration loaded",
		zap.String("file", v.ConfigFileUsed()))
}

func (c *Configuration) RepositoryFullName() string {
	return filepath.Join(c.RepositoryDirectory, c.RepositoryFile)
}

func (c *Configuration) String() string {
	return fmt.Sprintf(`{
	"repositoryDirectory": "%s",
	"repositoryFile": "%s",
	"lastCountDefault": %d,
	"debugMode": %t
}`, c.RepositoryDirectory, c.RepositoryFile, c.LastCountDefault, c.DebugMode)
}
