package impl

import (
	"context"
	"log/slog"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return logctx.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the patient's appointments grouped by status together with their reviews.
func (srv *profileService) GetProfile(ctx context.Context, patientID string) (*entity.PatientProfile, error) {
	srv.log(ctx).Debug("Getting patient profile", "patientID", patientID)

	if patientID == "" {
		return nil, domainerrors.ErrNotSignedIn
	}

	profile := &entity.PatientProfile{
		PatientID:      patientID,
		Upcoming:       []*entity.Appointment{},
		Completed:      []*entity.Appointment{},
		Cancelled:      []*entity.Appointment{},
		AwaitingReview: []string{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Appointments by status
		appointments, err := repoFactory.AppointmentRepo().FindByPatientID(ctx, patientID)
		if err != nil {
			return errors.Wrap(err, "failed to find appointments")
		}
		for _, a := range appointments {
			switch a.Status {
			case entity.AppointmentStatusScheduled:
				profile.Upcoming = append(profile.Upcoming, a)
			case entity.AppointmentStatusCompleted:
				profile.Completed = append(profile.Completed, a)
			case entity.AppointmentStatusCancelled:
				profile.Cancelled = append(profile.Cancelled, a)
			}
		}

		// 2. Reviews written by the patient
		reviews, err := repoFactory.ReviewRepo().FindByPatientID(ctx, patientID)
		if err != nil {
			return errors.Wrap(err, "failed to find reviews")
		}
		profile.Reviews = reviews

		// 3. Doctors seen but not yet reviewed
		reviewed := make(map[string]struct{}, len(reviews))
		for _, r := range reviews {
			reviewed[r.DoctorID] = struct{}{}
		}
		for _, a := range profile.Completed {
			if _, ok := reviewed[a.DoctorID]; ok {
				continue
			}
			reviewed[a.DoctorID] = struct{}{}
			profile.AwaitingReview = append(profile.AwaitingReview, a.DoctorID)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get patient profile", slog.Any("error", err), slog.String("patient_id", patientID))

		return nil, errors.Wrap(err, "failed to get patient profile")
	}

	return profile, nil
}
