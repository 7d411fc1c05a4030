package entity

const (
	// MinRating is the lowest star rating a review may carry.
	MinRating = 1
	// MaxRating is the highest star rating a review may carry.
	MaxRating = 5
)

// Review is a patient's rating of a doctor, optionally answered by the administrator.
type Review struct {
	ID          string
	DoctorID    string
	PatientID   string
	PatientName string // Snapshot of the patient's name when the review was written.
	Rating      int    // Integer in [MinRating, MaxRating].
	Comment     string // Never empty after trimming.
	Date        string // "YYYY-MM-DD".
	AdminReply  *string
}

// ReviewEdit carries the fields an administrator may change. Nil fields are left untouched.
type ReviewEdit struct {
	Rating  *int
	Comment *string
}

// IsEmpty reports whether the edit changes nothing.
func (e ReviewEdit) IsEmpty() bool {
	return e.Rating == nil && e.Comment == nil
}
