// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// CatalogUsecase defines the read-only doctor catalog operations.
type CatalogUsecase interface {
	// ListDoctors returns every doctor in catalog order.
	ListDoctors(ctx context.Context) ([]*entity.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*entity.Doctor, error)

	// SearchDoctors matches Term case-insensitively against name and specialty.
	SearchDoctors(ctx context.Context, filter entity.DoctorFilter) ([]*entity.Doctor, error)

	// Specialties returns the distinct specialties in first-seen order.
	Specialties(ctx context.Context) ([]string, error)
}
