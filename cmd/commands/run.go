package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

// RunCommand executes a command and records how it terminated.
type RunCommand struct {
	*BaseCommand
	store    bool
	tag      string
	pty      bool
	exitFunc func(int)
}

// NewRunCommand creates a new run command
func NewRunCommand(logger *zap.Logger, repo RepositoryInterface) *RunCommand {
	rc := &RunCommand{exitFunc: os.Exit}

	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command and classify its termination",
		Long: `Execute a command, observe how it terminated, and print the
classification. The child's exit code is propagated; a termination by
signal is reported with the shell convention 128+signal.

Examples:
  procstatus run -- ls -la              # Run and classify
  procstatus run -s -- make test        # Run and store the observation
  procstatus run --pty -- vim notes.md  # Run attached to a pty`,
		Args: cobra.MinimumNArgs(1),
		RunE: rc.runE,
	}

	rc.BaseCommand = NewBaseCommand(cmd, logger, repo)
	rc.cmd = cmd
	rc.setupFlags(cmd)
	return rc
}

func (rc *RunCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&rc.store, "store", "s", false, "Store the observation")
	cmd.Flags().StringVar(&rc.tag, "tag", "", "Tag to attach to the stored observation")
	cmd.Flags().BoolVar(&rc.pty, "pty", false, "Attach the command to a pseudo-terminal")
}

func (rc *RunCommand) runE(cmd *cobra.Command, args []string) error {
	name, rest := args[0], args[1:]

	rc.logger.Debug("Run command invoked",
		zap.String("name", name),
		zap.Strings("arguments", rest),
		zap.Bool("store", rc.store),
		zap.Bool("pty", rc.pty))

	executor := NewExecutor(rc.logger)

	startedAt := time.Now()

	var (
		result status.Result
		raw    int64
		err    error
	)
	if rc.pty {
		result, raw, err = executor.RunPTY(name, rest)
	} else {
		result, raw, err = executor.Run(name, rest)
	}
	if err != nil {
		return err
	}

	rc.printResult(result, raw)

	if rc.store {
		obs := models.Observation{
			Entity: models.Entity{
				ID:           rc.generateObservationID(),
				CreatedAt:    startedAt,
				TerminatedAt: time.Now(),
			},
			Name:      name,
			Arguments: rest,
			Platform:  hostPlatform(),
			Raw:       raw,
			Result:    result,
		}
		if rc.tag != "" {
			obs.Tags = []string{rc.tag}
		}

		if err := rc.repository.Put(context.Background(), obs); err != nil {
			rc.logger.Error("Failed to store observation",
				zap.String("observationId", obs.ID),
				zap.Error(err))
			return errors.NewError(errors.ErrRepositoryWrite, "failed to store observation", err)
		}

		rc.logger.Debug("Observation stored",
			zap.String("observationId", obs.ID),
			zap.Bool("success", result.Success()))
	}

	if !result.Success() {
		rc.exitFunc(exitCodeFor(result))
	}

	return nil
}

func (rc *RunCommand) printResult(result status.Result, raw int64) {
	if result.Success() {
		color.Green("%s (raw %d)", result, raw)
		return
	}

	if sig, ok := result.Signal(); ok {
		color.Red("signal: %s (raw %d)", sig, raw)
		return
	}

	color.Red("%s (raw %d)", result, raw)
}

// exitCodeFor maps a failed Result onto a process exit code, using the
// shell convention of 128+signal for signal deaths.
func exitCodeFor(result status.Result) int {
	if sig, ok := result.Signal(); ok {
		return 128 + int(sig)
	}
	if code, ok := result.ExitCode(); ok && code > 0 {
		return code
	}
	return int(status.ExitFailure)
}

func (rc *RunCommand) generateObservationID() string {
	return fmt.Sprintf("OBS-%d", time.Now().UnixNano())
}

func (rc *RunCommand) Command() *cobra.Command { return rc.cmd }
