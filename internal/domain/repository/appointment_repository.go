package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrAppointmentNotFound is returned when an appointment id is unknown.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository owns the appointment collection. Listing preserves insertion order.
type AppointmentRepository interface {
	// Create appends a new appointment. The caller assigns the id.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves a single appointment.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)

	// FindAll returns every appointment.
	FindAll(ctx context.Context) ([]*entity.Appointment, error)

	// FindByPatientID returns the appointments booked by one patient.
	FindByPatientID(ctx context.Context, patientID string) ([]*entity.Appointment, error)

	// FindActiveBySlot returns the non-cancelled appointment holding doctor/date/time, if any.
	FindActiveBySlot(ctx context.Context, doctorID, date, time string) (*entity.Appointment, error)

	// UpdateStatus changes the status of an existing appointment.
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error
}
