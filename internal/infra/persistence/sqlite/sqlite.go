// Package sqlite contains the process-local session snapshot store using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"clinic/config"
	"clinic/internal/domain/lifecycle"
	"clinic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the snapshot database configured in cfg.SQLite and closes it on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.SQLite.Path, params.Logger, params.Config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the sqlite database at path and migrates the snapshot table.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open SQLite database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.SessionSnapshotModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate session snapshot table")
	}

	return db, nil
}
