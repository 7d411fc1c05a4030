package repository

import "context"

// TransactionManager defines the interface for running several repository calls atomically.
// The domain store relies on it for check-and-insert, e.g. "slot is free, then book it".
type TransactionManager interface {
	// Execute runs fn atomically. If fn returns an error, its writes are discarded.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the running transaction.
type RepositoryFactory interface {
	DoctorRepo() DoctorRepository
	AppointmentRepo() AppointmentRepository
	ReviewRepo() ReviewRepository
}
