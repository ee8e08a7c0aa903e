package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

// ShowCommand represents the show command
type ShowCommand struct {
	*BaseCommand
	asJSON bool
}

// NewShowCommand creates a new show command
func NewShowCommand(logger *zap.Logger, repo RepositoryInterface) *ShowCommand {
	sc := &ShowCommand{}

	cmd := &cobra.Command{
		Use:   "show <observation-id>",
		Short: "Show a stored observation in full detail",
		Long: `Show a previously stored observation by its ID, including the full
breakdown of its raw termination status.

Examples:
  procstatus show OBS-123          # Show observation OBS-123
  procstatus show -j OBS-123       # Emit the observation as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: sc.runE,
	}

	sc.BaseCommand = NewBaseCommand(cmd, logger, repo)
	sc.cmd = cmd
	sc.setupFlags(cmd)
	return sc
}

func (sc *ShowCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&sc.asJSON, "json", "j", false, "Emit the observation as JSON")
}

func (sc *ShowCommand) runE(cmd *cobra.Command, args []string) error {
	observationID := args[0]

	sc.logger.Debug("Show command invoked",
		zap.String("observationId", observationID))

	obs, err := sc.repository.Get(observationID)
	if err != nil {
		sc.logger.Error("Observation not found",
			zap.String("observationId", observationID),
			zap.Error(err))
		return errors.NewError(errors.ErrObservationNotFound, "observation not found: "+observationID, err)
	}

	if sc.asJSON {
		data, err := json.MarshalIndent(obs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("ID:       %s\n", color.CyanString(obs.ID))
	fmt.Printf("Command:  %s\n", color.WhiteString(obs.CommandLine()))
	fmt.Printf("Recorded: %s\n", obs.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Platform: %s\n", obs.Platform)
	fmt.Printf("Raw:      %d (%#x)\n", obs.Raw, obs.Raw)
	sc.printBreakdown(obs)
	if obs.Result.Success() {
		fmt.Printf("Outcome:  %s\n", color.GreenString(obs.Result.String()))
	} else {
		fmt.Printf("Outcome:  %s\n", color.RedString(obs.Result.String()))
	}
	if len(obs.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(obs.Tags, ", "))
	}

	sc.logger.Info("Observation shown",
		zap.String("observationId", observationID),
		zap.Bool("success", obs.Result.Success()))

	return nil
}

// printBreakdown re-decodes the raw status so the user sees every facet
// the platform codec can extract, not just the summarized outcome.
func (sc *ShowCommand) printBreakdown(obs *models.Observation) {
	switch obs.Platform {
	case models.PlatformUnix:
		w := status.UnixStatus(int32(obs.Raw))
		if code, ok := w.ExitCode(); ok {
			fmt.Printf("Detail:   exited, code %d\n", code)
		} else if sig, ok := w.Signal(); ok {
			if w.CoreDump() {
				fmt.Printf("Detail:   terminated by %s, core dumped\n", sig)
			} else {
				fmt.Printf("Detail:   terminated by %s\n", sig)
			}
		} else if sig, ok := w.StopSignal(); ok {
			fmt.Printf("Detail:   stopped by %s\n", sig)
		} else if w.Continued() {
			fmt.Println("Detail:   continued")
		} else {
			fmt.Println("Detail:   unrecognized wait status")
		}
	case models.PlatformWindows:
		c := status.WindowsStatus(uint32(obs.Raw))
		if name, ok := c.WellKnown(); ok {
			fmt.Printf("Detail:   %s\n", name)
		} else if c.Success() {
			fmt.Println("Detail:   completed successfully")
		} else {
			fmt.Printf("Detail:   exit code %d\n", c.Raw())
		}
	}
}

func (sc *ShowCommand) Command() *cobra.Command {
	return sc.cmd
}
