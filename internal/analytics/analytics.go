package analytics

import (
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/models"
)

// Analytics aggregates termination outcomes across observations
type Analytics struct {
	logger *zap.Logger
}

// NewAnalytics creates a new analytics instance
func NewAnalytics(logger *zap.Logger) *Analytics {
	return &Analytics{
		logger: logger,
	}
}

// AnalyzeObservations summarizes how the observed processes terminated
func (a *Analytics) AnalyzeObservations(observations []models.Observation) *OutcomeReport {
	report := &OutcomeReport{
		TotalObservations: len(observations),
		ExitCodes:         make(map[int]int),
		Signals:           make(map[string]int),
		Platforms:         make(map[string]int),
		TopCommands:       make(map[string]int),
	}

	for _, obs := range observations {
		if obs.Success() {
			report.Successful++
		} else {
			report.Failed++
		}

		if code, ok := obs.Result.ExitCode(); ok {
			report.ExitCodes[code]++
		}
		if sig, ok := obs.Result.Signal(); ok {
			report.Signaled++
			report.Signals[sig.String()]++
		}

		report.Platforms[obs.Platform]++
		report.TopCommands[obs.Name]++
	}

	if report.TotalObservations > 0 {
		report.SuccessRate = float64(report.Successful) / float64(report.TotalObservations) * 100
	}

	return report
}

// OutcomeReport contains aggregated termination statistics
type OutcomeReport struct {
	TotalObservations int            `json:"total_observations"`
	Successful        int            `json:"successful"`
	Failed            int            `json:"failed"`
	Signaled          int            `json:"signaled"`
	SuccessRate       float64        `json:"success_rate"`
	ExitCodes         map[int]int    `json:"exit_codes"`
	Signals           map[string]int `json:"signals"`
	Platforms         map[string]int `json:"platforms"`
	TopCommands       map[string]int `json:"top_commands"`
}
