package commands

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
)

// ExportCommand represents the export command
type ExportCommand struct {
	*BaseCommand
	format     string
	outputFile string
	filter     string
}

// exportEntry flattens an observation for serialization so the export
// is readable without knowing the Result wire format.
type exportEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Command   string    `json:"command" yaml:"command"`
	Platform  string    `json:"platform" yaml:"platform"`
	Raw       int64     `json:"raw" yaml:"raw"`
	Outcome   string    `json:"outcome" yaml:"outcome"`
	Success   bool      `json:"success" yaml:"success"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewExportCommand creates a new export command
func NewExportCommand(logger *zap.Logger, repo RepositoryInterface) *ExportCommand {
	ec := &ExportCommand{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export observations to file",
		Long: `Export recorded observations to a file in JSON or YAML format.

Examples:
  procstatus export -o observations.json            # Export everything to JSON
  procstatus export -o failures.yaml -f yaml --filter failed`,
		RunE: ec.runE,
	}

	ec.BaseCommand = NewBaseCommand(cmd, logger, repo)
	ec.cmd = cmd
	ec.setupFlags(ec.cmd)
	return ec
}

func (c *ExportCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Output file path")
	cmd.Flags().StringVarP(&c.format, "format", "f", "json", "Output format (json or yaml)")
	cmd.Flags().StringVar(&c.filter, "filter", "", "Filter observations by outcome (success|failed)")

	if err := cmd.MarkFlagRequired("output"); err != nil {
		c.logger.Error("Failed to mark flag as required", zap.Error(err))
	}
}

func (c *ExportCommand) runE(cmd *cobra.Command, args []string) error {
	if err := c.validateFlags(); err != nil {
		return err
	}

	observations, err := c.getFilteredObservations()
	if err != nil {
		return err
	}

	entries := make([]exportEntry, 0, len(observations))
	for _, obs := range observations {
		entries = append(entries, exportEntry{
			ID:        obs.ID,
			Command:   obs.CommandLine(),
			Platform:  obs.Platform,
			Raw:       obs.Raw,
			Outcome:   obs.Result.String(),
			Success:   obs.Success(),
			Tags:      obs.Tags,
			CreatedAt: obs.CreatedAt,
		})
	}

	if err := c.exportData(entries); err != nil {
		return err
	}

	c.logger.Info("Export completed",
		zap.String("file", c.outputFile),
		zap.Int("observations", len(entries)),
	)

	return nil
}

func (c *ExportCommand) validateFlags() error {
	if c.format != "json" && c.format != "yaml" {
		return errors.NewError(errors.ErrInvalidCommand, "unsupported format", nil)
	}

	if c.filter != "" && c.filter != "success" && c.filter != "failed" {
		return errors.NewError(errors.ErrInvalidCommand, "invalid filter value", nil)
	}

	return nil
}

func (c *ExportCommand) getFilteredObservations() ([]models.Observation, error) {
	if c.filter != "" {
		success := c.filter == "success"
		observations, err := c.repository.SearchByStatus(success)
		if err != nil {
			return nil, errors.NewError(errors.ErrRepositoryRead, "failed to retrieve observations", err)
		}
		return observations, nil
	}

	observations, err := c.repository.GetAllObservations()
	if err != nil {
		return nil, errors.NewError(errors.ErrRepositoryRead, "failed to retrieve observations", err)
	}
	return observations, nil
}

func (c *ExportCommand) exportData(entries []exportEntry) error {
	var (
		data []byte
		err  error
	)

	switch c.format {
	case "json":
		data, err = json.MarshalIndent(entries, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(entries)
	}
	if err != nil {
		return errors.NewError(errors.ErrInvalidCommand, "failed to serialize observations", err)
	}

	if err := os.WriteFile(c.outputFile, data, 0644); err != nil {
		return errors.NewError(errors.ErrRepositoryWrite, "failed to write export file", err)
	}

	return nil
}

func (c *ExportCommand) Command() *cobra.Command { return c.cmd }
