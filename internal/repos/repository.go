package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/gi4nks/procstatus/internal/models"
)

const (
	obsKeyPrefix  = "obs:"
	timeKeyPrefix = "time:"
	timeKeyFormat = "20060102T150405.999999999Z0700"
)

type Repository struct {
	logger *zap.Logger
	db     *badger.DB
	dbPath string
}

// NewRepository creates a new repository instance
func NewRepository(dbPath string, logger *zap.Logger) (*Repository, error) {
	repo := &Repository{
		logger: logger,
		dbPath: dbPath,
	}

	if err := repo.initDB(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *Repository) initDB() error {
	// Ensure directory exists
	dir := filepath.Dir(r.dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create repository directory: %w", err)
	}

	opts := badger.DefaultOptions(r.dbPath)
	opts.Logger = nil // Disable Badger's internal logger

	var err error
	r.db, err = badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	return nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Put stores an observation in the repository
func (r *Repository) Put(ctx context.Context, o models.Observation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal observation: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		// Store observation by ID
		if err := txn.Set([]byte(obsKeyPrefix+o.ID), data); err != nil {
			return err
		}

		// Store index by timestamp for ordering
		timeKey := fmt.Sprintf("%s%s:%s", timeKeyPrefix, o.CreatedAt.Format(timeKeyFormat), o.ID)
		return txn.Set([]byte(timeKey), []byte(o.ID))
	})
}

// Get retrieves an observation by ID
func (r *Repository) Get(id string) (*models.Observation, error) {
	var observation models.Observation

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(obsKeyPrefix + id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &observation)
		})
	})

	if err != nil {
		return nil, err
	}
	return &observation, nil
}

// GetLimitObservations retrieves the most recent observations up to the specified limit
func (r *Repository) GetLimitObservations(limit int) ([]models.Observation, error) {
	var observations []models.Observation

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		// Reverse iteration starts past the time: range so recent keys come first
		for it.Seek([]byte(timeKeyPrefix + "~")); it.Valid() && count < limit; it.Next() {
			item := it.Item()
			key := string(item.Key())

			if !strings.HasPrefix(key, timeKeyPrefix) {
				continue
			}

			var obsID []byte
			err := item.Value(func(val []byte) error {
				obsID = append([]byte{}, val...)
				return nil
			})
			if err != nil {
				return err
			}

			obsItem, err := txn.Get([]byte(obsKeyPrefix + string(obsID)))
			if err != nil {
				return err
			}

			err = obsItem.Value(func(val []byte) error {
				var observation models.Observation
				if err := json.Unmarshal(val, &observation); err != nil {
					return err
				}
				observations = append(observations, observation)
				return nil
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return observations, nil
}

// GetAllObservations retrieves all stored observations
func (r *Repository) GetAllObservations() ([]models.Observation, error) {
	var observations []models.Observation

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(obsKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var observation models.Observation
				if err := json.Unmarshal(val, &observation); err != nil {
					return err
				}
				observations = append(observations, observation)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return observations, nil
}

// SearchByStatus retrieves observations filtered by success or failure
func (r *Repository) SearchByStatus(success bool) ([]models.Observation, error) {
	all, err := r.GetAllObservations()
	if err != nil {
		return nil, err
	}

	var observations []models.Observation
	for _, o := range all {
		if o.Success() == success {
			observations = append(observations, o)
		}
	}
	return observations, nil
}
