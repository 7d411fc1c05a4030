package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review id is unknown.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository owns the review collection. Listing preserves insertion order.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]*entity.Review, error)
	FindByPatientID(ctx context.Context, patientID string) ([]*entity.Review, error)

	// ExistsForPatientAndDoctor reports whether the patient has reviewed the doctor.
	ExistsForPatientAndDoctor(ctx context.Context, patientID, doctorID string) (bool, error)

	// Update replaces the stored review with the same id.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review with the given id.
	Delete(ctx context.Context, id string) error
}
