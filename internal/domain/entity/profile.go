package entity

// PatientProfile is everything the profile page shows for one patient.
type PatientProfile struct {
	PatientID string
	Upcoming  []*Appointment // Scheduled appointments in booking order.
	Completed []*Appointment
	Cancelled []*Appointment
	Reviews   []*Review
	// AwaitingReview lists doctors seen in a completed appointment that the patient has not reviewed yet.
	AwaitingReview []string
}
