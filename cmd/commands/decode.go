package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/errors"
	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

// DecodeCommand decodes raw status values without running anything.
type DecodeCommand struct {
	*BaseCommand
	platform string
	asJSON   bool
}

// NewDecodeCommand creates a new decode command
func NewDecodeCommand(logger *zap.Logger) *DecodeCommand {
	dc := &DecodeCommand{}

	cmd := &cobra.Command{
		Use:   "decode <raw-status>...",
		Short: "Decode raw process status values",
		Long: `Decode one or more raw status integers into their classification.
Both codecs are available on every platform, so a Unix wait status recorded
on Linux can be decoded on Windows and vice versa.

Examples:
  procstatus decode 0                 # exit status 0
  procstatus decode 256               # exit status 1 (Unix packing)
  procstatus decode 9                 # signal: SIGKILL
  procstatus decode -p windows 9009   # cmd.exe command not recognized
  procstatus decode --json 0x8b       # JSON classification`,
		Args: cobra.MinimumNArgs(1),
		RunE: dc.runE,
	}

	dc.BaseCommand = NewBaseCommandWithoutRepo(cmd, logger)
	dc.cmd = cmd
	dc.setupFlags(cmd)
	return dc
}

func (dc *DecodeCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dc.platform, "platform", "p", "", "Status platform (unix or windows, default is the host platform)")
	cmd.Flags().BoolVar(&dc.asJSON, "json", false, "Print the classification as JSON")
}

func (dc *DecodeCommand) resolvePlatform() (string, error) {
	switch dc.platform {
	case "":
		if runtime.GOOS == "windows" {
			return models.PlatformWindows, nil
		}
		return models.PlatformUnix, nil
	case models.PlatformUnix, models.PlatformWindows:
		return dc.platform, nil
	default:
		return "", errors.NewError(errors.ErrInvalidStatus, "unknown platform: "+dc.platform, nil)
	}
}

func (dc *DecodeCommand) runE(cmd *cobra.Command, args []string) error {
	platform, err := dc.resolvePlatform()
	if err != nil {
		return err
	}

	dc.logger.Debug("Decode command invoked",
		zap.String("platform", platform),
		zap.Strings("values", args))

	for _, arg := range args {
		raw, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return errors.NewError(errors.ErrInvalidStatus, "not a status value: "+arg, err)
		}

		if err := dc.decodeOne(platform, raw); err != nil {
			return err
		}
	}

	return nil
}

func (dc *DecodeCommand) decodeOne(platform string, raw int64) error {
	var (
		summary string
		result  status.Result
	)

	switch platform {
	case models.PlatformUnix:
		if raw < math.MinInt32 || raw > math.MaxInt32 {
			return errors.NewError(errors.ErrInvalidStatus, fmt.Sprintf("value out of range for a wait status: %d", raw), nil)
		}
		ws := status.UnixStatus(int32(raw))
		summary = ws.String()
		result = status.FromUnix(ws)
	case models.PlatformWindows:
		if raw < 0 || raw > math.MaxUint32 {
			return errors.NewError(errors.ErrInvalidStatus, fmt.Sprintf("value out of range for an exit code: %d", raw), nil)
		}
		ec := status.WindowsStatus(uint32(raw))
		summary = ec.String()
		result = status.FromWindows(ec)
	}

	if dc.asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if result.Success() {
		color.Green("%d: %s", raw, summary)
	} else {
		color.Red("%d: %s", raw, summary)
	}

	return nil
}
