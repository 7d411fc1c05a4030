package memory

import (
	"context"

	"clinic/internal/domain/repository"
)

// transactionManager implements repository.TransactionManager by holding the database
// write lock for the whole callback and restoring the collections if it fails.
type transactionManager struct {
	db *Database
}

// repositoryFactory hands out repositories that assume the lock is already held.
type repositoryFactory struct {
	g guard
}

func (f *repositoryFactory) DoctorRepo() repository.DoctorRepository {
	return &doctorRepository{g: f.g}
}

func (f *repositoryFactory) AppointmentRepo() repository.AppointmentRepository {
	return &appointmentRepository{g: f.g}
}

func (f *repositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{g: f.g}
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *Database) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn with exclusive access to the database.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.db.mu.Lock()
	defer tm.db.mu.Unlock()

	saved := tm.db.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.db.restore(saved)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{g: guard{db: tm.db, inTx: true}}); err != nil {
		tm.db.restore(saved)

		return err
	}

	return nil
}
