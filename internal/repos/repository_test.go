package repos_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gi4nks/procstatus/internal/models"
	"github.com/gi4nks/procstatus/internal/repos"
	"github.com/gi4nks/procstatus/internal/status"
)

type testFixture struct {
	repo   *repos.Repository
	logger *zap.Logger
}

func setupTest(t *testing.T) *testFixture {
	logger := zaptest.NewLogger(t)
	testDBPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := repos.NewRepository(testDBPath, logger)
	require.NoError(t, err)

	t.Cleanup(func() { repo.Close() })

	return &testFixture{
		repo:   repo,
		logger: logger,
	}
}

func observation(id string, createdAt time.Time, result status.Result) models.Observation {
	return models.Observation{
		Entity: models.Entity{
			ID:           id,
			CreatedAt:    createdAt,
			TerminatedAt: createdAt.Add(time.Second),
		},
		Name:      "sh",
		Arguments: []string{"-c", "exit 0"},
		Platform:  models.PlatformUnix,
		Result:    result,
	}
}

func TestPutAndGet(t *testing.T) {
	f := setupTest(t)
	ctx := context.Background()

	tests := []struct {
		name string
		obs  models.Observation
	}{
		{
			name: "successful observation",
			obs:  observation("obs-1", time.Now(), status.Result{}),
		},
		{
			name: "failed observation",
			obs:  observation("obs-2", time.Now(), status.Exit(3)),
		},
		{
			name: "signaled observation",
			obs:  observation("obs-3", time.Now(), status.Killed(status.SIGKILL)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.repo.Put(ctx, tt.obs)
			assert.NoError(t, err)

			found, err := f.repo.Get(tt.obs.ID)
			assert.NoError(t, err)
			assert.Equal(t, tt.obs.ID, found.ID)
			assert.Equal(t, tt.obs.Name, found.Name)
			assert.Equal(t, tt.obs.Platform, found.Platform)
			assert.Equal(t, tt.obs.Result, found.Result)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	f := setupTest(t)

	_, err := f.repo.Get("missing")
	assert.Error(t, err)
}

func TestGetAllObservations(t *testing.T) {
	f := setupTest(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, f.repo.Put(ctx, observation("obs-1", now, status.Result{})))
	require.NoError(t, f.repo.Put(ctx, observation("obs-2", now.Add(time.Minute), status.Exit(1))))

	all, err := f.repo.GetAllObservations()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetLimitObservations(t *testing.T) {
	f := setupTest(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"obs-old", "obs-mid", "obs-new"} {
		require.NoError(t, f.repo.Put(ctx, observation(id, base.Add(time.Duration(i)*time.Minute), status.Result{})))
	}

	recent, err := f.repo.GetLimitObservations(2)
	assert.NoError(t, err)
	require.Len(t, recent, 2)

	// Most recent first
	assert.Equal(t, "obs-new", recent[0].ID)
	assert.Equal(t, "obs-mid", recent[1].ID)
}

func TestSearchByStatus(t *testing.T) {
	f := setupTest(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, f.repo.Put(ctx, observation("ok-1", now, status.Result{})))
	require.NoError(t, f.repo.Put(ctx, observation("fail-1", now, status.Exit(2))))
	require.NoError(t, f.repo.Put(ctx, observation("fail-2", now, status.Killed(status.SIGTERM))))

	failed, err := f.repo.SearchByStatus(false)
	assert.NoError(t, err)
	assert.Len(t, failed, 2)

	succeeded, err := f.repo.SearchByStatus(true)
	assert.NoError(t, err)
	require.Len(t, succeeded, 1)
	assert.Equal(t, "ok-1", succeeded[0].ID)
}

func TestPut_CancelledContext(t *testing.T) {
	f := setupTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.repo.Put(ctx, observation("obs-1", time.Now(), status.Result{}))
	assert.Error(t, err)
}

// Signal information has to survive the JSON round trip through the store.
func TestResultPersistence(t *testing.T) {
	f := setupTest(t)
	ctx := context.Background()

	obs := observation("sig-1", time.Now(), status.Killed(status.SIGSEGV))
	require.NoError(t, f.repo.Put(ctx, obs))

	found, err := f.repo.Get("sig-1")
	require.NoError(t, err)

	sig, ok := found.Result.Signal()
	assert.True(t, ok)
	assert.Equal(t, status.SIGSEGV, sig)

	_, ok = found.Result.ExitCode()
	assert.False(t, ok)
}
