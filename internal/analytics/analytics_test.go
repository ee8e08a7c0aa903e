package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/status"
)

func obs(name, platform string, result status.Result) models.Observation {
	return models.Observation{
		Entity: models.Entity{
			ID:        "obs-" + name,
			CreatedAt: time.Now(),
		},
		Name:     name,
		Platform: platform,
		Result:   result,
	}
}

func TestAnalyzeObservations(t *testing.T) {
	a := NewAnalytics(zaptest.NewLogger(t))

	t.Run("empty input", func(t *testing.T) {
		report := a.AnalyzeObservations(nil)

		assert.Equal(t, 0, report.TotalObservations)
		assert.Equal(t, 0.0, report.SuccessRate)
		assert.Empty(t, report.ExitCodes)
		assert.Empty(t, report.Signals)
	})

	t.Run("mixed outcomes", func(t *testing.T) {
		report := a.AnalyzeObservations([]models.Observation{
			obs("true", models.PlatformUnix, status.Result{}),
			obs("make", models.PlatformUnix, status.Exit(2)),
			obs("sleep", models.PlatformUnix, status.Killed(status.SIGKILL)),
			obs("cmd", models.PlatformWindows, status.Exit(9009)),
		})

		assert.Equal(t, 4, report.TotalObservations)
		assert.Equal(t, 1, report.Successful)
		assert.Equal(t, 3, report.Failed)
		assert.Equal(t, 1, report.Signaled)
		assert.Equal(t, 25.0, report.SuccessRate)

		assert.Equal(t, 1, report.ExitCodes[2])
		assert.Equal(t, 1, report.ExitCodes[9009])
		assert.Equal(t, 1, report.Signals["SIGKILL"])
		assert.Equal(t, 3, report.Platforms[models.PlatformUnix])
		assert.Equal(t, 1, report.Platforms[models.PlatformWindows])
	})

	t.Run("success counts as exit code zero", func(t *testing.T) {
		report := a.AnalyzeObservations([]models.Observation{
			obs("true", models.PlatformUnix, status.Result{}),
		})

		assert.Equal(t, 1, report.ExitCodes[0])
		assert.Equal(t, 100.0, report.SuccessRate)
	})

	t.Run("signaled has no exit code", func(t *testing.T) {
		report := a.AnalyzeObservations([]models.Observation{
			obs("sleep", models.PlatformUnix, status.Killed(status.SIGTERM)),
		})

		assert.Empty(t, report.ExitCodes)
		assert.Equal(t, 1, report.Signals["SIGTERM"])
	})
}
