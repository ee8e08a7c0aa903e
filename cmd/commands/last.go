package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
)

type LastCommand struct {
	*BaseCommand
	limit      int
	failedOnly bool
}

func NewLastCommand(logger *zap.Logger, repo RepositoryInterface) *LastCommand {
	lc := &LastCommand{}

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show recent observations",
		Long:  `Display the most recently recorded process terminations with optional filtering.`,
		RunE:  lc.runE,
	}

	lc.BaseCommand = NewBaseCommand(cmd, logger, repo)
	lc.cmd = cmd
	lc.setupFlags(cmd)
	return lc
}

func (lc *LastCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&lc.limit, "limit", "n", 10, "Number of observations to show")
	cmd.Flags().BoolVarP(&lc.failedOnly, "failed", "f", false, "Show only failed observations")
}

func (lc *LastCommand) runE(cmd *cobra.Command, args []string) error {
	lc.logger.Debug("Last command invoked",
		zap.Int("limit", lc.limit),
		zap.Bool("failedOnly", lc.failedOnly))

	observations, err := lc.repository.GetAllObservations()
	if err != nil {
		lc.logger.Error("Failed to retrieve observations", zap.Error(err))
		return errors.NewError(errors.ErrRepositoryRead, "failed to retrieve observations", err)
	}

	// Sort observations by creation time (most recent first)
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].CreatedAt.After(observations[j].CreatedAt)
	})

	// Filter for failed observations if requested
	if lc.failedOnly {
		filtered := make([]models.Observation, 0)
		for _, obs := range observations {
			if !obs.Success() {
				filtered = append(filtered, obs)
			}
		}
		observations = filtered
	}

	// Apply limit
	if len(observations) > lc.limit {
		observations = observations[:lc.limit]
	}

	if len(observations) == 0 {
		if lc.failedOnly {
			fmt.Println("No failed observations found")
		} else {
			fmt.Println("No observations found")
		}
		return nil
	}

	fmt.Printf("Last %d observation(s):\n\n", len(observations))

	for i, obs := range observations {
		fmt.Printf("%d. %s\n", i+1, obs.CommandLine())

		// Display ID with color based on outcome
		if obs.Success() {
			color.Green("   ID: %s", obs.ID)
		} else {
			color.Red("   ID: %s", obs.ID)
		}

		fmt.Printf("   Observed: %s (%s)\n", obs.CreatedAt.Format("2006-01-02 15:04:05"), obs.Platform)

		fmt.Print("   Outcome: ")
		if obs.Success() {
			color.Green("%s", obs.Result)
		} else {
			color.Red("%s", obs.Result)
		}

		if len(obs.Tags) > 0 {
			fmt.Printf("   Tags: %s\n", strings.Join(obs.Tags, ", "))
		}

		if i < len(observations)-1 {
			fmt.Println()
		}
	}

	return nil
}
