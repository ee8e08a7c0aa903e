package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/repos"
	"github.com/gi4nks/procstatus/internal/utils"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "procstatus",
	Short: "Decode and record process termination statuses",
	Long: `Procstatus interprets the raw status an operating system reports when a
process terminates: a clean exit, a non-zero exit code, or (on Unix) death by
signal. It decodes statuses from either platform regardless of where it runs,
and can execute commands to observe and record their termination.

Examples:
  procstatus decode 256                  # Decode a raw Unix wait status
  procstatus decode -p windows 9009      # Decode a Windows exit code
  procstatus run -- sh -c 'exit 3'       # Run a command and classify its exit
  procstatus last                        # Show recent recorded observations`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.procstatus.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	// Initialize logger
	logger := initLogger()

	// Initialize repository
	config := utils.NewConfiguration(logger)
	repo, err := repos.NewRepository(config.RepositoryFullName(), logger)
	if err != nil {
		logger.Fatal("Failed to initialize repository", zap.Error(err))
	}

	// Add subcommands
	addCommands(logger, repo)
}

func initLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		// For CLI tools, we want quieter logging in production
		// Only log warnings and errors to avoid cluttering user output
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = config.Build()
	}

	if err != nil {
		panic(err)
	}

	return logger
}

func addCommands(logger *zap.Logger, repo RepositoryInterface) {
	rootCmd.AddCommand(NewDecodeCommand(logger).Command())
	rootCmd.AddCommand(NewRunCommand(logger, repo).Command())
	rootCmd.AddCommand(NewLastCommand(logger, repo).Command())
	rootCmd.AddCommand(NewShowCommand(logger, repo).Command())
	rootCmd.AddCommand(NewStatsCommand(logger, repo).Command())
	rootCmd.AddCommand(NewExportCommand(logger, repo).Command())
	rootCmd.AddCommand(NewImportCommand(logger, repo).Command())
	rootCmd.AddCommand(NewMCPCommand(logger, repo).Command())

	// Commands that don't need repository
	rootCmd.AddCommand(NewVersionCommand(logger).Command())
	rootCmd.AddCommand(NewConfigurationCommand(logger).Command())
}

func initConfig() {
	// Configuration initialization can be added here
	// For now, we'll use the default configuration
}
