package memory

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/pkg/errors"
)

type appointmentRepository struct {
	g guard
}

// NewAppointmentRepository is the constructor for the appointment collection.
func NewAppointmentRepository(db *Database) repository.AppointmentRepository {
	return &appointmentRepository{g: guard{db: db}}
}

func (repo *appointmentRepository) Create(_ context.Context, appointment *entity.Appointment) error {
	if appointment == nil || appointment.ID == "" {
		return errors.New("appointment id is required")
	}

	defer repo.g.write()()

	for _, a := range repo.g.db.appointments {
		if a.ID == appointment.ID {
			return errors.Errorf("appointment %s already exists", appointment.ID)
		}
	}
	repo.g.db.appointments = append(repo.g.db.appointments, cloneAppointment(appointment))

	return nil
}

func (repo *appointmentRepository) FindByID(_ context.Context, id string) (*entity.Appointment, error) {
	defer repo.g.read()()

	for _, a := range repo.g.db.appointments {
		if a.ID == id {
			return cloneAppointment(a), nil
		}
	}

	return nil, repository.ErrAppointmentNotFound
}

func (repo *appointmentRepository) FindAll(_ context.Context) ([]*entity.Appointment, error) {
	return repo.filter(func(*entity.Appointment) bool { return true }), nil
}

func (repo *appointmentRepository) FindByPatientID(_ context.Context, patientID string) ([]*entity.Appointment, error) {
	return repo.filter(func(a *entity.Appointment) bool { return a.PatientID == patientID }), nil
}

func (repo *appointmentRepository) FindActiveBySlot(_ context.Context, doctorID, date, time string) (*entity.Appointment, error) {
	defer repo.g.read()()

	for _, a := range repo.g.db.appointments {
		if a.HoldsSlot(doctorID, date, time) {
			return cloneAppointment(a), nil
		}
	}

	return nil, repository.ErrAppointmentNotFound
}

func (repo *appointmentRepository) UpdateStatus(_ context.Context, id string, status entity.AppointmentStatus) error {
	defer repo.g.write()()

	for i, a := range repo.g.db.appointments {
		if a.ID != id {
			continue
		}
		updated := cloneAppointment(a)
		updated.Status = status
		repo.g.db.appointments[i] = updated

		return nil
	}

	return repository.ErrAppointmentNotFound
}

func (repo *appointmentRepository) filter(keep func(*entity.Appointment) bool) []*entity.Appointment {
	defer repo.g.read()()

	out := []*entity.Appointment{}
	for _, a := range repo.g.db.appointments {
		if keep(a) {
			out = append(out, cloneAppointment(a))
		}
	}

	return out
}
