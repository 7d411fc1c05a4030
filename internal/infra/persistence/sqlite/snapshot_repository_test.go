package sqlite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"clinic/config"
	"clinic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) repository.SnapshotRepository {
	t.Helper()

	db, err := Open(":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewSnapshotRepository(db)
}

func TestSnapshotRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), repository.SnapshotKeyUser)
	assert.ErrorIs(t, err, repository.ErrSnapshotKeyNotFound)
}

func TestSnapshotRepository_PutOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, repository.SnapshotKeyUser, `{"id":"1"}`))
	require.NoError(t, repo.Put(ctx, repository.SnapshotKeyUser, `{"id":"2"}`))

	value, err := repo.Get(ctx, repository.SnapshotKeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2"}`, value)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, repository.SnapshotKeyAdmin, "true"))
	require.NoError(t, repo.Delete(ctx, repository.SnapshotKeyAdmin))
	require.NoError(t, repo.Delete(ctx, repository.SnapshotKeyAdmin))

	_, err := repo.Get(ctx, repository.SnapshotKeyAdmin)
	assert.ErrorIs(t, err, repository.ErrSnapshotKeyNotFound)
}

func TestSnapshotRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	db, err := Open(path, logger, &config.Config{})
	require.NoError(t, err)
	require.NoError(t, NewSnapshotRepository(db).Put(ctx, repository.SnapshotKeyAdmin, "true"))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	reopened, err := Open(path, logger, &config.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if s, err := reopened.DB(); err == nil {
			_ = s.Close()
		}
	})

	value, err := NewSnapshotRepository(reopened).Get(ctx, repository.SnapshotKeyAdmin)
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestGormSlogLogger_DebugLogsStatements(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, err := Open(":memory:", slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	})

	require.NoError(t, NewSnapshotRepository(db).Put(context.Background(), repository.SnapshotKeyAdmin, "true"))
	assert.Contains(t, buf.String(), `"component":"sqlite"`)
	assert.Contains(t, buf.String(), "session_snapshots")
}
