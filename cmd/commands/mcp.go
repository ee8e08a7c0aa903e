package commands

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

type MCPCommand struct {
	*BaseCommand
}

func NewMCPCommand(logger *zap.Logger, repo RepositoryInterface) *MCPCommand {
	mc := &MCPCommand{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server exposing procstatus tools",
		Long: `Start a Model Context Protocol (MCP) server that exposes procstatus
functionality as tools.

The MCP server runs over stdio and provides the following tools:
  - decode_status: Decode a raw status value for a given platform
  - recent_observations: List recently recorded terminations

This allows AI assistants and other MCP clients to interpret process
statuses and inspect the recorded history.

Example:
  procstatus mcp`,
		RunE: mc.runE,
	}

	mc.BaseCommand = NewBaseCommand(cmd, logger, repo)
	mc.cmd = cmd
	return mc
}

func (mc *MCPCommand) runE(cmd *cobra.Command, args []string) error {
	mc.logger.Debug("Starting MCP server")

	s := server.NewMCPServer(
		"procstatus",
		getVersion(),
		server.WithToolCapabilities(true),
	)

	mc.registerTools(s)

	if err := server.ServeStdio(s); err != nil {
		mc.logger.Error("MCP server error", zap.Error(err))
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}

func (mc *MCPCommand) registerTools(s *server.MCPServer) {
	// Tool: decode_status - Decode a raw status value
	s.AddTool(
		mcp.NewTool("decode_status",
			mcp.WithDescription("Decode a raw process status integer into its classification: clean exit, non-zero exit code, or (Unix) termination by signal, including stopped/continued job-control states."),
			mcp.WithString("raw",
				mcp.Required(),
				mcp.Description("The raw status value, decimal or 0x-prefixed hex"),
			),
			mcp.WithString("platform",
				mcp.Description("Status platform: 'unix' or 'windows' (default: unix)"),
			),
		),
		mc.handleDecode,
	)

	// Tool: recent_observations - List recorded terminations
	s.AddTool(
		mcp.NewTool("recent_observations",
			mcp.WithDescription("Get the most recently recorded process terminations, including command line, platform, raw status, and classification."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of observations to return (default: 10, max: 100)"),
			),
			mcp.WithBoolean("failed_only",
				mcp.Description("If true, only return failed observations"),
			),
		),
		mc.handleRecent,
	)
}

// handleDecode decodes a raw status value
func (mc *MCPCommand) handleDecode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawArg := request.GetString("raw", "")
	platform := request.GetString("platform", models.PlatformUnix)

	raw, err := strconv.ParseInt(rawArg, 0, 64)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Not a status value: %q", rawArg)), nil
	}

	var (
		summary string
		result  status.Result
	)

	switch platform {
	case models.PlatformUnix:
		if raw < math.MinInt32 || raw > math.MaxInt32 {
			return mcp.NewToolResultError(fmt.Sprintf("Value out of range for a wait status: %d", raw)), nil
		}
		ws := status.UnixStatus(int32(raw))
		summary = ws.String()
		result = status.FromUnix(ws)
	case models.PlatformWindows:
		if raw < 0 || raw > math.MaxUint32 {
			return mcp.NewToolResultError(fmt.Sprintf("Value out of range for an exit code: %d", raw)), nil
		}
		ec := status.WindowsStatus(uint32(raw))
		summary = ec.String()
		result = status.FromWindows(ec)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown platform: %q", platform)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Raw: %d (platform: %s)\n", raw, platform)
	fmt.Fprintf(&b, "Classification: %s\n", summary)
	fmt.Fprintf(&b, "Success: %t\n", result.Success())
	if code, ok := result.ExitCode(); ok {
		fmt.Fprintf(&b, "Exit code: %d\n", code)
	}
	if sig, ok := result.Signal(); ok {
		fmt.Fprintf(&b, "Signal: %s (%d)\n", sig, int(sig))
	}

	return mcp.NewToolResultText(b.String()), nil
}

// handleRecent returns recent observations
func (mc *MCPCommand) handleRecent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 1
	}

	failedOnly := request.GetBool("failed_only", false)

	observations, err := mc.repository.GetAllObservations()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to retrieve observations: %v", err)), nil
	}

	// Sort by creation time (most recent first)
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].CreatedAt.After(observations[j].CreatedAt)
	})

	var selected []models.Observation
	for _, obs := range observations {
		if failedOnly && obs.Success() {
			continue
		}
		selected = append(selected, obs)
		if len(selected) >= limit {
			break
		}
	}

	return mcp.NewToolResultText(mc.formatObservationsResponse(selected)), nil
}

func (mc *MCPCommand) formatObservationsResponse(observations []models.Observation) string {
	if len(observations) == 0 {
		return "No observations found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d observation(s):\n\n", len(observations))

	for i, obs := range observations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, obs.CommandLine())
		fmt.Fprintf(&b, "   ID: %s\n", obs.ID)
		fmt.Fprintf(&b, "   Platform: %s, raw: %d\n", obs.Platform, obs.Raw)
		fmt.Fprintf(&b, "   Outcome: %s\n", obs.Result)
		if len(obs.Tags) > 0 {
			fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(obs.Tags, ", "))
		}
		fmt.Fprintf(&b, "   Observed: %s\n", obs.CreatedAt.Format("2006-01-02 15:04:05"))
		if i < len(observations)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (mc *MCPCommand) Command() *cobra.Command {
	return mc.cmd
}
