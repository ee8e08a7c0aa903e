package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

type ImportCommand struct {
	*BaseCommand
	inputFile    string
	format       string
	dryRun       bool
	skipExisting bool
}

// importEntry matches the flat shape produced by the export command.
// Outcome and success are ignored on the way in: the result is always
// re-decoded from the raw status so imported data cannot disagree with
// the codec.
type importEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Command   string    `json:"command" yaml:"command"`
	Platform  string    `json:"platform" yaml:"platform"`
	Raw       int64     `json:"raw" yaml:"raw"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

func NewImportCommand(logger *zap.Logger, repo RepositoryInterface) *ImportCommand {
	ic := &ImportCommand{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import observations from file",
		Long: `Import observations from a file in JSON or YAML format.
Raw statuses are decoded again during import, so an import file only
needs the raw value and the platform that produced it.

Examples:
  procstatus import -i observations.json            # Import from JSON file
  procstatus import -i backup.yaml -f yaml          # Import from YAML file
  procstatus import -i data.json --dry-run          # Preview without changes
  procstatus import -i data.json --skip-existing    # Keep existing observations`,
		RunE: ic.runE,
	}

	ic.BaseCommand = NewBaseCommand(cmd, logger, repo)
	ic.cmd = cmd
	ic.setupFlags(cmd)
	return ic
}

func (ic *ImportCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ic.inputFile, "input", "i", "", "Input file path")
	cmd.Flags().StringVarP(&ic.format, "format", "f", "json", "Input format (json or yaml)")
	cmd.Flags().BoolVar(&ic.dryRun, "dry-run", false, "Show what would be imported without making changes")
	cmd.Flags().BoolVar(&ic.skipExisting, "skip-existing", false, "Skip observations that already exist")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		ic.logger.Error("Failed to mark flag as required", zap.Error(err))
	}
}

func (ic *ImportCommand) runE(cmd *cobra.Command, args []string) error {
	ic.logger.Debug("Import command invoked",
		zap.String("inputFile", ic.inputFile),
		zap.String("format", ic.format),
		zap.Bool("dryRun", ic.dryRun),
		zap.Bool("skipExisting", ic.skipExisting))

	if err := ic.validateFlags(); err != nil {
		return err
	}

	entries, err := ic.readImportFile()
	if err != nil {
		return err
	}

	ic.logger.Info("Parsed import file",
		zap.String("file", ic.inputFile),
		zap.Int("entryCount", len(entries)))

	return ic.processEntries(entries)
}

func (ic *ImportCommand) validateFlags() error {
	if ic.format != "json" && ic.format != "yaml" {
		return errors.NewError(errors.ErrInvalidCommand, "unsupported format", nil)
	}

	if _, err := os.Stat(ic.inputFile); os.IsNotExist(err) {
		return errors.NewError(errors.ErrInvalidCommand, "input file does not exist", err)
	}

	return nil
}

func (ic *ImportCommand) readImportFile() ([]importEntry, error) {
	data, err := os.ReadFile(ic.inputFile)
	if err != nil {
		ic.logger.Error("Failed to read input file",
			zap.String("file", ic.inputFile),
			zap.Error(err))
		return nil, errors.NewError(errors.ErrRepositoryRead, "failed to read input file", err)
	}

	var entries []importEntry

	switch ic.format {
	case "json":
		err = json.Unmarshal(data, &entries)
	case "yaml":
		err = yaml.Unmarshal(data, &entries)
	}

	if err != nil {
		ic.logger.Error("Failed to parse input file",
			zap.String("file", ic.inputFile),
			zap.String("format", ic.format),
			zap.Error(err))
		return nil, errors.NewError(errors.ErrInvalidCommand, "failed to parse input file", err)
	}

	return entries, nil
}

// toObservation rebuilds an observation from a flat entry, re-running
// the platform codec on the raw status.
func (ic *ImportCommand) toObservation(entry importEntry) (models.Observation, error) {
	var result status.Result

	switch entry.Platform {
	case models.PlatformUnix:
		result = status.FromUnix(status.UnixStatus(int32(entry.Raw)))
	case models.PlatformWindows:
		result = status.FromWindows(status.WindowsStatus(uint32(entry.Raw)))
	default:
		return models.Observation{}, errors.NewError(errors.ErrInvalidStatus,
			"unknown platform: "+entry.Platform, nil)
	}

	fields := strings.Fields(entry.Command)
	if len(fields) == 0 {
		return models.Observation{}, errors.NewError(errors.ErrInvalidCommand,
			"entry has no command", nil)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return models.Observation{
		Entity: models.Entity{
			ID:           entry.ID,
			CreatedAt:    createdAt,
			TerminatedAt: createdAt,
		},
		Name:      fields[0],
		Arguments: fields[1:],
		Platform:  entry.Platform,
		Raw:       entry.Raw,
		Result:    result,
		Tags:      entry.Tags,
	}, nil
}

func (ic *ImportCommand) processEntries(entries []importEntry) error {
	if ic.dryRun {
		return ic.previewImport(entries)
	}

	imported := 0
	skipped := 0
	failed := 0

	for _, entry := range entries {
		if ic.skipExisting && ic.observationExists(entry.ID) {
			skipped++
			ic.logger.Debug("Skipping existing observation",
				zap.String("observationId", entry.ID))
			continue
		}

		obs, err := ic.toObservation(entry)
		if err != nil {
			failed++
			ic.logger.Error("Failed to rebuild observation",
				zap.String("observationId", entry.ID),
				zap.Error(err))
			continue
		}

		if err := ic.repository.Put(context.Background(), obs); err != nil {
			failed++
			ic.logger.Error("Failed to import observation",
				zap.String("observationId", obs.ID),
				zap.Error(err))
			continue
		}

		imported++
		ic.logger.Debug("Imported observation",
			zap.String("observationId", obs.ID),
			zap.String("outcome", obs.Result.String()))
	}

	color.Cyan("Import completed:")
	fmt.Printf("Total entries: %s\n", color.YellowString("%d", len(entries)))
	fmt.Printf("Imported: %s\n", color.GreenString("%d", imported))
	if skipped > 0 {
		fmt.Printf("Skipped: %s\n", color.YellowString("%d", skipped))
	}
	if failed > 0 {
		fmt.Printf("Errors: %s\n", color.RedString("%d", failed))
	}

	ic.logger.Info("Import process completed",
		zap.Int("total", len(entries)),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped),
		zap.Int("errors", failed))

	return nil
}

func (ic *ImportCommand) previewImport(entries []importEntry) error {
	color.Cyan("Import preview for file: %s", ic.inputFile)
	fmt.Printf("Format: %s\n", color.YellowString(ic.format))
	fmt.Printf("Total entries to import: %s\n\n", color.GreenString("%d", len(entries)))

	existing := 0
	for i, entry := range entries {
		exists := ic.observationExists(entry.ID)
		if exists {
			existing++
		}

		outcome := "invalid entry"
		if obs, err := ic.toObservation(entry); err == nil {
			outcome = obs.Result.String()
		}

		fmt.Printf("%d. %s %s\n", i+1,
			color.WhiteString(entry.Command),
			color.CyanString("(ID: %s)", entry.ID))
		fmt.Printf("   Platform: %s, raw: %d\n", entry.Platform, entry.Raw)
		fmt.Printf("   Outcome: %s\n", outcome)

		if len(entry.Tags) > 0 {
			fmt.Printf("   Tags: %s\n", color.YellowString("[%s]", strings.Join(entry.Tags, ", ")))
		}

		if exists {
			color.Yellow("   Observation already exists")
		}
	}

	if existing > 0 {
		fmt.Printf("\n%d observation(s) already exist\n", existing)
		if ic.skipExisting {
			color.Cyan("These will be skipped due to --skip-existing flag")
		} else {
			color.Red("These will be overwritten")
		}
	}

	ic.logger.Info("Import preview completed",
		zap.Int("totalEntries", len(entries)),
		zap.Int("existingObservations", existing))

	return nil
}

func (ic *ImportCommand) observationExists(id string) bool {
	_, err := ic.repository.Get(id)
	return err == nil
}

func (ic *ImportCommand) Command() *cobra.Command {
	return ic.cmd
}
