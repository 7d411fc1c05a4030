package impl

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewInput(doctorID, patientID string, rating int, comment string) usecase.AddReviewInput {
	return usecase.AddReviewInput{
		DoctorID:    doctorID,
		PatientID:   patientID,
		PatientName: "Patient " + patientID,
		Rating:      rating,
		Comment:     comment,
		Date:        "2025-03-01",
	}
}

func TestReviewService_AddReview_RatingBounds(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.reviews.AddReview(ctx, reviewInput("3", "p1", rating, "fine"))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, "rating %d", rating)
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	}

	for rating := entity.MinRating; rating <= entity.MaxRating; rating++ {
		patientID := "patient-" + string(rune('0'+rating))
		review, err := fx.reviews.AddReview(ctx, reviewInput("3", patientID, rating, "fine"))
		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, review.Rating)
	}
}

func TestReviewService_AddReview_Comment(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	_, err := fx.reviews.AddReview(ctx, reviewInput("3", "p1", 4, "   \t "))
	assert.ErrorIs(t, err, domainerrors.ErrEmptyComment)

	review, err := fx.reviews.AddReview(ctx, reviewInput("3", "p1", 4, "  very kind  "))
	require.NoError(t, err)
	assert.Equal(t, "very kind", review.Comment)
	assert.Nil(t, review.AdminReply)
}

func TestReviewService_AddReview_DefaultsDateToToday(t *testing.T) {
	fx := createTestStore(t)

	input := reviewInput("3", "p1", 5, "great")
	input.Date = ""

	review, err := fx.reviews.AddReview(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-07", review.Date)
}

func TestReviewService_AddReview_UnknownDoctor(t *testing.T) {
	fx := createTestStore(t)

	_, err := fx.reviews.AddReview(context.Background(), reviewInput("99", "p1", 5, "great"))
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReviewService_AddReview_DuplicateConflict(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	_, err := fx.reviews.AddReview(ctx, reviewInput("3", "p1", 5, "great"))
	require.NoError(t, err)

	_, err = fx.reviews.AddReview(ctx, reviewInput("3", "p1", 2, "changed my mind"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))

	reviews, err := fx.reviews.ReviewsForDoctor(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewService_AverageRating(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	// Doctor "3" has no seeded reviews, so the seed rating is returned.
	avg, err := fx.reviews.AverageRating(ctx, "3")
	require.NoError(t, err)
	assert.InDelta(t, 4.7, avg, 1e-9)

	_, err = fx.reviews.AddReview(ctx, reviewInput("3", "p1", 5, "great"))
	require.NoError(t, err)
	_, err = fx.reviews.AddReview(ctx, reviewInput("3", "p2", 3, "ok"))
	require.NoError(t, err)

	avg, err = fx.reviews.AverageRating(ctx, "3")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)

	_, err = fx.reviews.AverageRating(ctx, "99")
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
}

func TestReviewService_SeedDoctorScenario(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	before, err := fx.reviews.ReviewsForDoctor(ctx, "1")
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, 5, before[0].Rating)

	_, err = fx.reviews.AddReview(ctx, usecase.AddReviewInput{DoctorID: "1", PatientID: "p2", Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	after, err := fx.reviews.ReviewsForDoctor(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after, 2)

	avg, err := fx.reviews.AverageRating(ctx, "1")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestReviewService_HasReviewed(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	reviewed, err := fx.reviews.HasReviewed(ctx, "p1", "4")
	require.NoError(t, err)
	assert.False(t, reviewed)

	_, err = fx.reviews.AddReview(ctx, reviewInput("4", "p1", 4, "good surgeon"))
	require.NoError(t, err)

	reviewed, err = fx.reviews.HasReviewed(ctx, "p1", "4")
	require.NoError(t, err)
	assert.True(t, reviewed)

	reviewed, err = fx.reviews.HasReviewed(ctx, "p2", "4")
	require.NoError(t, err)
	assert.False(t, reviewed)
}

func TestReviewService_DeleteReview(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	fx.asPatient("1")
	err := fx.reviews.DeleteReview(ctx, "1")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	fx.asAdmin()
	require.NoError(t, fx.reviews.DeleteReview(ctx, "1"))

	all, err := fx.reviews.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)

	err = fx.reviews.DeleteReview(ctx, "1")
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReviewService_AddAdminReply(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	original, err := fx.reviews.ListReviews(ctx)
	require.NoError(t, err)
	before := original[0]

	fx.asPatient("1")
	_, err = fx.reviews.AddAdminReply(ctx, "1", "Thanks")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	fx.asAdmin()
	_, err = fx.reviews.AddAdminReply(ctx, "1", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.reviews.AddAdminReply(ctx, "missing", "Thanks")
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)

	replied, err := fx.reviews.AddAdminReply(ctx, "1", "  Thank you for the feedback!  ")
	require.NoError(t, err)
	require.NotNil(t, replied.AdminReply)
	assert.Equal(t, "Thank you for the feedback!", *replied.AdminReply)

	after := *replied
	after.AdminReply = nil
	assert.Equal(t, *before, after)

	replied, err = fx.reviews.AddAdminReply(ctx, "1", "Updated reply")
	require.NoError(t, err)
	assert.Equal(t, "Updated reply", *replied.AdminReply)
}

func TestReviewService_UpdateReview(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	rating := 2
	comment := "  revised  "

	fx.signedOut()
	_, err := fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{Rating: &rating})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	fx.asAdmin()
	updated, err := fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Great doctor, very knowledgeable. The wait time was a bit long.", updated.Comment)

	updated, err = fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "revised", updated.Comment)

	_, err = fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	bad := 9
	_, err = fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{Rating: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)

	blank := " "
	_, err = fx.reviews.UpdateReview(ctx, "2", entity.ReviewEdit{Comment: &blank})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyComment)

	_, err = fx.reviews.UpdateReview(ctx, "missing", entity.ReviewEdit{Rating: &rating})
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)

	stored, err := fx.reviews.ReviewsForDoctor(ctx, "2")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "revised", stored[0].Comment)
}

func TestReviewService_ReviewsForPatient(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	_, err := fx.reviews.AddReview(ctx, reviewInput("3", "1", 4, "kind"))
	require.NoError(t, err)

	mine, err := fx.reviews.ReviewsForPatient(ctx, "1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "1", mine[0].DoctorID)
	assert.Equal(t, "3", mine[1].DoctorID)
}
