package sqlite

import (
	"context"
	"time"

	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRepository implements the repository.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Get reads the value stored under key.
func (repo *snapshotRepository) Get(ctx context.Context, key string) (string, error) {
	var snapshotM model.SessionSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("snapshot_key = ?", key).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSnapshotKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to read snapshot key %s", key)
	}

	return snapshotM.Value, nil
}

// Put writes value under key, replacing any previous value.
func (repo *snapshotRepository) Put(ctx context.Context, key, value string) error {
	snapshotM := &model.SessionSnapshotModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "snapshot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(snapshotM).Error; err != nil {
		return errors.Wrapf(err, "failed to write snapshot key %s", key)
	}

	return nil
}

// Delete removes key. Removing a missing key succeeds.
func (repo *snapshotRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("snapshot_key = ?", key).
		Delete(&model.SessionSnapshotModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete snapshot key %s", key)
	}

	return nil
}
