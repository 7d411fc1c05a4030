package repository

import (
	"context"
	"errors"
)

// ErrSnapshotKeyNotFound is returned when a snapshot key has never been written or was removed.
var ErrSnapshotKeyNotFound = errors.New("snapshot key not found")

// Session snapshot keys.
const (
	SnapshotKeyUser  = "user"
	SnapshotKeyAdmin = "admin"
)

// SnapshotRepository is the key-value store the session is saved to and restored from.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
