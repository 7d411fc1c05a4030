package service

import "github.com/google/uuid"

// IDGenerator produces identifiers for new appointments and reviews.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
