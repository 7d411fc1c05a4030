// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrDoctorNotFound is returned when a doctor id is not in the catalog.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorRepository is the read-only doctor catalog.
type DoctorRepository interface {
	// FindAll returns every doctor in catalog order.
	FindAll(ctx context.Context) ([]*entity.Doctor, error)

	// FindByID retrieves a single doctor by id.
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
}
