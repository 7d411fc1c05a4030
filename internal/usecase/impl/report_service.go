package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"
	"clinic/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		txManager: txManager,
		logger:    logger,
	}
}

// Dashboard reads both collections in one transaction so the numbers agree with each other.
func (srv *reportService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointments, err := repoFactory.AppointmentRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list appointments")
		}

		reviews, err := repoFactory.ReviewRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		stats.TotalAppointments = len(appointments)
		stats.TotalReviews = len(reviews)
		stats.DistinctPatients = countDistinctPatients(appointments)
		stats.AverageRating, _ = util.Mean(ratingsOf(reviews))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	logctx.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard computed",
		slog.Int("appointments", stats.TotalAppointments),
		slog.Int("reviews", stats.TotalReviews),
		slog.Int("patients", stats.DistinctPatients),
	)

	return stats, nil
}
