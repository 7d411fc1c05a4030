// Package memory contains the in-process implementation of the persistence layer.
// Collections are ordered slices guarded by one lock, so listing keeps insertion order.
package memory

import (
	"slices"
	"sync"

	"clinic/internal/domain/entity"
)

// Database holds the doctor catalog and the appointment and review collections.
type Database struct {
	mu           sync.RWMutex
	doctors      []*entity.Doctor
	appointments []*entity.Appointment
	reviews      []*entity.Review
}

// NewDatabase creates a database holding the given doctors and reviews.
// The doctor catalog is fixed from here on.
func NewDatabase(doctors []*entity.Doctor, reviews []*entity.Review) *Database {
	db := &Database{
		doctors:      make([]*entity.Doctor, 0, len(doctors)),
		appointments: []*entity.Appointment{},
		reviews:      make([]*entity.Review, 0, len(reviews)),
	}
	for _, d := range doctors {
		db.doctors = append(db.doctors, cloneDoctor(d))
	}
	for _, r := range reviews {
		db.reviews = append(db.reviews, cloneReview(r))
	}

	return db
}

// NewSeededDatabase creates a database holding the built-in catalog and sample reviews.
func NewSeededDatabase() *Database {
	return NewDatabase(SeedDoctors(), SeedReviews())
}

type snapshot struct {
	appointments []*entity.Appointment
	reviews      []*entity.Review
}

// snapshot must be called with mu held. Records are replaced, never mutated in place,
// so copying the slices is enough to roll back.
func (db *Database) snapshot() snapshot {
	return snapshot{
		appointments: slices.Clone(db.appointments),
		reviews:      slices.Clone(db.reviews),
	}
}

func (db *Database) restore(s snapshot) {
	db.appointments = s.appointments
	db.reviews = s.reviews
}

// guard locks db unless the caller already runs inside a transaction holding the lock.
type guard struct {
	db   *Database
	inTx bool
}

func (g guard) read() func() {
	if g.inTx {
		return func() {}
	}
	g.db.mu.RLock()

	return g.db.mu.RUnlock
}

func (g guard) write() func() {
	if g.inTx {
		return func() {}
	}
	g.db.mu.Lock()

	return g.db.mu.Unlock
}

func cloneDoctor(d *entity.Doctor) *entity.Doctor {
	c := *d
	c.AvailableSlots = slices.Clone(d.AvailableSlots)

	return &c
}

func cloneAppointment(a *entity.Appointment) *entity.Appointment {
	c := *a

	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	if r.AdminReply != nil {
		reply := *r.AdminReply
		c.AdminReply = &reply
	}

	return &c
}
