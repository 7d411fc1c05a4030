package entity

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// AppointmentStatusScheduled is the initial state of every booking.
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	// AppointmentStatusCompleted is terminal.
	AppointmentStatusCompleted AppointmentStatus = "completed"
	// AppointmentStatusCancelled is terminal. Cancelled appointments release their slot.
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// String returns the string representation of the status.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s. Only scheduled appointments move.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}

	return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
}

// Appointment is a booked consultation of a patient with a doctor.
type Appointment struct {
	ID          string            // Generated at booking.
	DoctorID    string            // References a catalog Doctor.
	PatientID   string            // References the booking User.
	PatientName string            // Snapshot of the patient's name at booking time.
	Date        string            // Calendar date, "YYYY-MM-DD".
	Time        string            // One of the doctor's AvailableSlots.
	Status      AppointmentStatus // Starts as scheduled.
	Notes       string            // Optional free text from the patient.
}

// HoldsSlot reports whether the appointment still occupies its doctor/date/time slot.
func (a *Appointment) HoldsSlot(doctorID, date, time string) bool {
	return a.Status != AppointmentStatusCancelled &&
		a.DoctorID == doctorID && a.Date == date && a.Time == time
}
