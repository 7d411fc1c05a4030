package memory

import (
	"context"
	"sync"

	"clinic/internal/domain/repository"
)

// snapshotRepository keeps the session snapshot for the lifetime of the process.
type snapshotRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSnapshotRepository is the constructor for the in-process snapshot store.
func NewSnapshotRepository() repository.SnapshotRepository {
	return &snapshotRepository{values: map[string]string{}}
}

func (repo *snapshotRepository) Get(_ context.Context, key string) (string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	value, ok := repo.values[key]
	if !ok {
		return "", repository.ErrSnapshotKeyNotFound
	}

	return value, nil
}

func (repo *snapshotRepository) Put(_ context.Context, key, value string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.values[key] = value

	return nil
}

func (repo *snapshotRepository) Delete(_ context.Context, key string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.values, key)

	return nil
}
