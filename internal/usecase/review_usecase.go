package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// AddReviewInput defines the data required to review a doctor.
// An empty Date is replaced with today's date.
type AddReviewInput struct {
	DoctorID    string `validate:"required"`
	PatientID   string `validate:"required"`
	PatientName string
	Rating      int
	Comment     string
	Date        string `validate:"omitempty,datetime=2006-01-02"`
}

// ReviewUsecase defines the review operations of the domain store.
// Mutations other than AddReview require the session to hold the administrator capability.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input AddReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, id string, edit entity.ReviewEdit) (*entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
	AddAdminReply(ctx context.Context, reviewID, reply string) (*entity.Review, error)

	ListReviews(ctx context.Context) ([]*entity.Review, error)
	ReviewsForDoctor(ctx context.Context, doctorID string) ([]*entity.Review, error)
	ReviewsForPatient(ctx context.Context, patientID string) ([]*entity.Review, error)

	// AverageRating is the mean of the doctor's review ratings, or the doctor's seed rating without reviews.
	AverageRating(ctx context.Context, doctorID string) (float64, error)
	HasReviewed(ctx context.Context, patientID, doctorID string) (bool, error)
}
