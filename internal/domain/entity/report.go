package entity

// DashboardStats are the administrator's headline numbers, computed from the live collections.
type DashboardStats struct {
	TotalAppointments int
	TotalReviews      int
	DistinctPatients  int
	// AverageRating is the mean over all reviews, or 0 when there are none.
	AverageRating float64
}
