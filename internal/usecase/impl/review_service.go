package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clinic/internal/domain/availability"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"
	"clinic/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	fx.In

	txManager   repository.TransactionManager
	doctorRepo  repository.DoctorRepository
	reviewRepo  repository.ReviewRepository
	idGenerator service.IDGenerator
	clock       service.Clock
	session     service.Capability
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	doctorRepo repository.DoctorRepository,
	reviewRepo repository.ReviewRepository,
	idGenerator service.IDGenerator,
	clock service.Clock,
	session service.Capability,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   txManager,
		doctorRepo:  doctorRepo,
		reviewRepo:  reviewRepo,
		idGenerator: idGenerator,
		clock:       clock,
		session:     session,
		logger:      logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return logctx.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview stores a patient's review. Each patient may review a doctor once.
func (srv *reviewService) AddReview(ctx context.Context, input usecase.AddReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Adding review",
		slog.String("doctor_id", input.DoctorID),
		slog.String("patient_id", input.PatientID),
		slog.Int("rating", input.Rating),
	)

	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	comment, err := normalizeComment(input.Comment)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = srv.clock.Now().Format(availability.DateLayout)
	}

	review := &entity.Review{
		ID:          srv.idGenerator.NewID(),
		DoctorID:    input.DoctorID,
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		Rating:      input.Rating,
		Comment:     comment,
		Date:        date,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := repoFactory.DoctorRepo().FindByID(ctx, input.DoctorID); err != nil {
			return doctorLookupError(err, input.DoctorID)
		}

		reviewed, err := reviewRepo.ExistsForPatientAndDoctor(ctx, input.PatientID, input.DoctorID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if reviewed {
			return domainerrors.ErrDuplicateReview.WithDetails(
				fmt.Sprintf("patient %s, doctor %s", input.PatientID, input.DoctorID))
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add review", slog.Any("error", err), slog.String("doctor_id", input.DoctorID))

		return nil, errors.Wrap(err, "failed to add review")
	}

	return review, nil
}

// UpdateReview merges the provided fields of edit into the review. An edit with no fields is rejected.
func (srv *reviewService) UpdateReview(ctx context.Context, id string, edit entity.ReviewEdit) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.String("review_id", id))

	if !isAdmin(srv.session) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("editing reviews")
	}
	if edit.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("edit changes no field")
	}

	var comment string
	if edit.Rating != nil {
		if err := validateRating(*edit.Rating); err != nil {
			return nil, err
		}
	}
	if edit.Comment != nil {
		normalized, err := normalizeComment(*edit.Comment)
		if err != nil {
			return nil, err
		}
		comment = normalized
	}

	return srv.mutate(ctx, id, "failed to update review", func(review *entity.Review) {
		if edit.Rating != nil {
			review.Rating = *edit.Rating
		}
		if edit.Comment != nil {
			review.Comment = comment
		}
	})
}

// DeleteReview removes a review.
func (srv *reviewService) DeleteReview(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting review", slog.String("review_id", id))

	if !isAdmin(srv.session) {
		return domainerrors.ErrUnauthorized.WithDetails("deleting reviews")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Delete(ctx, id); err != nil {
			return reviewLookupError(err, id)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// AddAdminReply sets or replaces the administrator's reply. Nothing else on the review changes.
func (srv *reviewService) AddAdminReply(ctx context.Context, reviewID, reply string) (*entity.Review, error) {
	srv.log(ctx).Info("Replying to review", slog.String("review_id", reviewID))

	if !isAdmin(srv.session) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("replying to reviews")
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reply must not be empty")
	}

	return srv.mutate(ctx, reviewID, "failed to add admin reply", func(review *entity.Review) {
		review.AdminReply = &reply
	})
}

func (srv *reviewService) mutate(
	ctx context.Context,
	id, failure string,
	apply func(*entity.Review),
) (*entity.Review, error) {
	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			return reviewLookupError(err, id)
		}

		apply(review)

		if err := reviewRepo.Update(ctx, review); err != nil {
			return reviewLookupError(err, id)
		}
		updated = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn(failure, slog.Any("error", err), slog.String("review_id", id))

		return nil, errors.Wrap(err, failure)
	}

	return updated, nil
}

// ListReviews returns every review in creation order.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ReviewsForDoctor returns the doctor's reviews in creation order.
func (srv *reviewService) ReviewsForDoctor(ctx context.Context, doctorID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find doctor reviews")
	}

	return reviews, nil
}

// ReviewsForPatient returns the reviews written by a patient.
func (srv *reviewService) ReviewsForPatient(ctx context.Context, patientID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find patient reviews")
	}

	return reviews, nil
}

// AverageRating falls back to the seed rating when the doctor has no reviews.
func (srv *reviewService) AverageRating(ctx context.Context, doctorID string) (float64, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		return 0, doctorLookupError(err, doctorID)
	}

	reviews, err := srv.ReviewsForDoctor(ctx, doctorID)
	if err != nil {
		return 0, err
	}

	if mean, ok := util.Mean(ratingsOf(reviews)); ok {
		return mean, nil
	}

	return doctor.Rating, nil
}

// HasReviewed reports whether the patient already reviewed the doctor.
func (srv *reviewService) HasReviewed(ctx context.Context, patientID, doctorID string) (bool, error) {
	reviewed, err := srv.reviewRepo.ExistsForPatientAndDoctor(ctx, patientID, doctorID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check review")
	}

	return reviewed, nil
}

func validateRating(rating int) error {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return domainerrors.ErrInvalidRating.WithDetails(fmt.Sprintf("got %d", rating))
	}

	return nil
}

func normalizeComment(comment string) (string, error) {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return "", domainerrors.ErrEmptyComment
	}

	return trimmed, nil
}

func reviewLookupError(err error, id string) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrReviewNotFound.WithDetails("id " + id)
	}

	return errors.Wrap(err, "failed to access review")
}

func ratingsOf(reviews []*entity.Review) []int {
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}

	return ratings
}
