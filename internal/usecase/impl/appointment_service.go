package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	fx.In

	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	idGenerator     service.IDGenerator
	session         service.Capability
	logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(
	txManager repository.TransactionManager,
	appointmentRepo repository.AppointmentRepository,
	idGenerator service.IDGenerator,
	session service.Capability,
	logger *slog.Logger,
) usecase.AppointmentUsecase {
	return &appointmentService{
		txManager:       txManager,
		appointmentRepo: appointmentRepo,
		idGenerator:     idGenerator,
		session:         session,
		logger:          logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return logctx.GetLoggerOrDefault(ctx, srv.logger)
}

// BookAppointment books a free slot of a doctor.
func (srv *appointmentService) BookAppointment(ctx context.Context, input usecase.BookAppointmentInput) (*entity.Appointment, error) {
	srv.log(ctx).Info("Booking appointment",
		slog.String("doctor_id", input.DoctorID),
		slog.String("patient_id", input.PatientID),
		slog.String("date", input.Date),
		slog.String("time", input.Time),
	)

	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:          srv.idGenerator.NewID(),
		DoctorID:    input.DoctorID,
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		Date:        input.Date,
		Time:        input.Time,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		// 1. The doctor must exist and offer the time
		doctor, err := repoFactory.DoctorRepo().FindByID(ctx, input.DoctorID)
		if err != nil {
			return doctorLookupError(err, input.DoctorID)
		}
		if !doctor.HasSlot(input.Time) {
			return domainerrors.ErrSlotNotOffered.WithDetails(
				fmt.Sprintf("%s does not offer %s", doctor.Name, input.Time))
		}

		// 2. The slot must be free
		held, err := appointmentRepo.FindActiveBySlot(ctx, input.DoctorID, input.Date, input.Time)
		switch {
		case err == nil:
			return domainerrors.ErrSlotAlreadyBooked.WithDetails(
				fmt.Sprintf("%s %s is held by appointment %s", input.Date, input.Time, held.ID))
		case !errors.Is(err, repository.ErrAppointmentNotFound):
			return errors.Wrap(err, "failed to check slot")
		}

		// 3. Book it
		if err := appointmentRepo.Create(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to create appointment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to book appointment", slog.Any("error", err), slog.String("doctor_id", input.DoctorID))

		return nil, errors.Wrap(err, "failed to book appointment")
	}

	srv.log(ctx).Info("Appointment booked", slog.String("appointment_id", appointment.ID))

	return appointment, nil
}

// ListAppointments returns every appointment in booking order.
func (srv *appointmentService) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// AppointmentsForPatient returns the patient's appointments in booking order.
func (srv *appointmentService) AppointmentsForPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find patient appointments")
	}

	return appointments, nil
}

// AppointmentsForPatientByStatus narrows AppointmentsForPatient to one status.
func (srv *appointmentService) AppointmentsForPatientByStatus(
	ctx context.Context,
	patientID string,
	status entity.AppointmentStatus,
) ([]*entity.Appointment, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + status.String())
	}

	appointments, err := srv.AppointmentsForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return filterByStatus(appointments, status), nil
}

// DistinctPatientCount counts the patients who booked at least once.
func (srv *appointmentService) DistinctPatientCount(ctx context.Context) (int, error) {
	appointments, err := srv.ListAppointments(ctx)
	if err != nil {
		return 0, err
	}

	return countDistinctPatients(appointments), nil
}

// CompleteAppointment marks a scheduled appointment completed.
func (srv *appointmentService) CompleteAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	if !isAdmin(srv.session) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("completing appointments")
	}

	return srv.transition(ctx, id, entity.AppointmentStatusCompleted, func(*entity.Appointment) error {
		return nil
	})
}

// CancelAppointment cancels a scheduled appointment, releasing its slot.
func (srv *appointmentService) CancelAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	return srv.transition(ctx, id, entity.AppointmentStatusCancelled, func(a *entity.Appointment) error {
		if isAdmin(srv.session) {
			return nil
		}
		if srv.session != nil && srv.session.UserID() != "" && srv.session.UserID() == a.PatientID {
			return nil
		}

		return domainerrors.ErrUnauthorized.WithDetails("only the admin or the booking patient may cancel")
	})
}

func (srv *appointmentService) transition(
	ctx context.Context,
	id string,
	next entity.AppointmentStatus,
	authorize func(*entity.Appointment) error,
) (*entity.Appointment, error) {
	srv.log(ctx).Info("Changing appointment status", slog.String("appointment_id", id), slog.String("status", next.String()))

	var updated *entity.Appointment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := appointmentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return domainerrors.ErrAppointmentNotFound.WithDetails("id " + id)
			}

			return errors.Wrap(err, "failed to find appointment")
		}

		if err := authorize(appointment); err != nil {
			return err
		}

		if !appointment.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("%s -> %s", appointment.Status, next))
		}

		if err := appointmentRepo.UpdateStatus(ctx, id, next); err != nil {
			return errors.Wrap(err, "failed to update appointment status")
		}

		appointment.Status = next
		updated = appointment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change appointment status", slog.Any("error", err), slog.String("appointment_id", id))

		return nil, errors.Wrap(err, "failed to change appointment status")
	}

	return updated, nil
}

func isAdmin(capability service.Capability) bool {
	return capability != nil && capability.IsAdmin()
}

func filterByStatus(appointments []*entity.Appointment, status entity.AppointmentStatus) []*entity.Appointment {
	out := []*entity.Appointment{}
	for _, a := range appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}

	return out
}

func countDistinctPatients(appointments []*entity.Appointment) int {
	patients := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		patients[a.PatientID] = struct{}{}
	}

	return len(patients)
}
