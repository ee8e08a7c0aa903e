package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gi4nks/procstatus/internal/models"
)

// MockRepository is a mock implementation of the repository interface for testing
type MockRepository struct {
	mock.Mock
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// Put implements Repository.Put
func (m *MockRepository) Put(ctx context.Context, observation models.Observation) error {
	args := m.Called(ctx, observation)
	return args.Error(0)
}

// Get implements Repository.Get
func (m *MockRepository) Get(id string) (*models.Observation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Observation), args.Error(1)
}

// GetAllObservations implements Repository.GetAllObservations
func (m *MockRepository) GetAllObservations() ([]models.Observation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Observation), args.Error(1)
}

// GetLimitObservations implements Repository.GetLimitObservations
func (m *MockRepository) GetLimitObservations(limit int) ([]models.Observation, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Observation), args.Error(1)
}

// SearchByStatus implements Repository.SearchByStatus
func (m *MockRepository) SearchByStatus(success bool) ([]models.Observation, error) {
	args := m.Called(success)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Observation), args.Error(1)
}
