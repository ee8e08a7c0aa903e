package repos

import (
	"context"

	"github.com/gi4nks/procstatus/internal/models"
)

// RepositoryInterface defines the methods that a repository must implement
type RepositoryInterface interface {
	Put(ctx context.Context, observation models.Observation) error
	Get(id string) (*models.Observation, error)
	GetAllObservations() ([]models.Observation, error)
	GetLimitObservations(limit int) ([]models.Observation, error)
	SearchByStatus(success bool) ([]models.Observation, error)
}
