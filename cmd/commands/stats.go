package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/analytics"
	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
)

type StatsCommand struct {
	*BaseCommand
	opts StatsOptions
}

type StatsOptions struct {
	period string
	format string
	detail bool
}

var statsPeriods = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

func NewStatsCommand(logger *zap.Logger, repo RepositoryInterface) *StatsCommand {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show termination statistics",
		Long:  `Display aggregated statistics about how observed processes terminated`,
	}

	sc := &StatsCommand{
		BaseCommand: NewBaseCommand(cmd, logger, repo),
	}

	cmd.RunE = sc.runE
	sc.setupFlags(cmd)
	sc.cmd = cmd
	return sc
}

func (sc *StatsCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sc.opts.period, "period", "p", "all",
		"Analysis period (24h, 7d, 30d, all)")
	cmd.Flags().StringVarP(&sc.opts.format, "format", "f", "text",
		"Output format (text/json)")
	cmd.Flags().BoolVarP(&sc.opts.detail, "detail", "d", false,
		"Show per-code and per-signal breakdown")
}

func (sc *StatsCommand) runE(cmd *cobra.Command, args []string) error {
	observations, err := sc.observationsForPeriod()
	if err != nil {
		return err
	}

	report := analytics.NewAnalytics(sc.logger).AnalyzeObservations(observations)

	sc.logger.Debug("Stats computed",
		zap.String("period", sc.opts.period),
		zap.Int("observations", report.TotalObservations))

	switch sc.opts.format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "text":
		sc.printReport(report)
	default:
		return errors.NewError(errors.ErrInvalidCommand, "unsupported format", nil)
	}

	return nil
}

func (sc *StatsCommand) observationsForPeriod() ([]models.Observation, error) {
	observations, err := sc.repository.GetAllObservations()
	if err != nil {
		return nil, errors.NewError(errors.ErrRepositoryRead, "failed to retrieve observations", err)
	}

	if sc.opts.period == "all" || sc.opts.period == "" {
		return observations, nil
	}

	window, ok := statsPeriods[sc.opts.period]
	if !ok {
		return nil, errors.NewError(errors.ErrInvalidCommand, "unknown period: "+sc.opts.period, nil)
	}

	cutoff := time.Now().Add(-window)
	filtered := make([]models.Observation, 0, len(observations))
	for _, obs := range observations {
		if obs.CreatedAt.After(cutoff) {
			filtered = append(filtered, obs)
		}
	}
	return filtered, nil
}

func (sc *StatsCommand) printReport(report *analytics.OutcomeReport) {
	color.Cyan("Termination statistics (%s):", sc.opts.period)
	fmt.Printf("Observations: %d\n", report.TotalObservations)
	fmt.Printf("Successful:   %s\n", color.GreenString("%d", report.Successful))
	fmt.Printf("Failed:       %s\n", color.RedString("%d", report.Failed))
	fmt.Printf("Signaled:     %d\n", report.Signaled)
	fmt.Printf("Success rate: %.1f%%\n", report.SuccessRate)

	if !sc.opts.detail {
		return
	}

	if len(report.ExitCodes) > 0 {
		fmt.Println("\nExit codes:")
		for code, count := range report.ExitCodes {
			fmt.Printf("  %d: %d\n", code, count)
		}
	}
	if len(report.Signals) > 0 {
		fmt.Println("\nSignals:")
		for sig, count := range report.Signals {
			fmt.Printf("  %s: %d\n", sig, count)
		}
	}
	if len(report.Platforms) > 0 {
		fmt.Println("\nPlatforms:")
		for platform, count := range report.Platforms {
			fmt.Printf("  %s: %d\n", platform, count)
		}
	}
	if len(report.TopCommands) > 0 {
		fmt.Println("\nCommands:")
		for name, count := range report.TopCommands {
			fmt.Printf("  %s: %d\n", name, count)
		}
	}
}

func (sc *StatsCommand) Command() *cobra.Command {
	return sc.cmd
}
