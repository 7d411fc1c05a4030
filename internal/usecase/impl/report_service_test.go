package impl

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"
	mockRepo "clinic/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Dashboard_Seed(t *testing.T) {
	fx := createTestStore(t)

	stats, err := fx.reports.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 0, stats.DistinctPatients)
	assert.InDelta(t, 4.5, stats.AverageRating, 1e-9)
}

func TestReportService_Dashboard_AfterActivity(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	for _, in := range []struct{ patient, date, slot string }{
		{"p1", "2025-03-10", "09:00"},
		{"p1", "2025-03-11", "09:00"},
		{"p2", "2025-03-10", "10:00"},
	} {
		_, err := fx.appointments.BookAppointment(ctx, bookInput(in.patient, in.date, in.slot))
		require.NoError(t, err)
	}
	_, err := fx.reviews.AddReview(ctx, reviewInput("3", "p1", 3, "ok"))
	require.NoError(t, err)

	stats, err := fx.reports.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		TotalAppointments: 3,
		TotalReviews:      3,
		DistinctPatients:  2,
		AverageRating:     4.0,
	}, stats)
}

func TestReportService_Dashboard_NoReviews(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	fx.asAdmin()
	require.NoError(t, fx.reviews.DeleteReview(ctx, "1"))
	require.NoError(t, fx.reviews.DeleteReview(ctx, "2"))

	stats, err := fx.reports.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
}

func TestReportService_Dashboard_ReviewRepoError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewReportService(txManager, newTestLogger())
	ctx := context.Background()

	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	onExecute(t, txManager, nil, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().AppointmentRepo().Return(appointmentRepo)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)
		appointmentRepo.EXPECT().FindAll(ctx).Return([]*entity.Appointment{}, nil)
		reviewRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))
	})

	stats, err := svc.Dashboard(ctx)
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list reviews")
}
