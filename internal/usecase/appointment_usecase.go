package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// --- Input DTOs ---

// BookAppointmentInput defines the data required to book an appointment.
type BookAppointmentInput struct {
	DoctorID    string `validate:"required"`
	PatientID   string `validate:"required"`
	PatientName string
	Date        string `validate:"required,datetime=2006-01-02"`
	Time        string `validate:"required"`
	Notes       string
}

// AppointmentUsecase defines the appointment operations of the domain store.
type AppointmentUsecase interface {
	// BookAppointment creates a scheduled appointment. A slot already held by a
	// non-cancelled appointment is rejected with ErrSlotAlreadyBooked.
	BookAppointment(ctx context.Context, input BookAppointmentInput) (*entity.Appointment, error)

	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)
	AppointmentsForPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error)
	AppointmentsForPatientByStatus(ctx context.Context, patientID string, status entity.AppointmentStatus) ([]*entity.Appointment, error)

	// DistinctPatientCount counts distinct patient ids across all appointments.
	DistinctPatientCount(ctx context.Context) (int, error)

	// CompleteAppointment is admin only.
	CompleteAppointment(ctx context.Context, id string) (*entity.Appointment, error)

	// CancelAppointment is allowed for the admin and for the patient who booked.
	CancelAppointment(ctx context.Context, id string) (*entity.Appointment, error)
}
