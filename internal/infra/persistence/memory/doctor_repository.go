package memory

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
)

type doctorRepository struct {
	g guard
}

// NewDoctorRepository is the constructor for the read-only doctor catalog.
func NewDoctorRepository(db *Database) repository.DoctorRepository {
	return &doctorRepository{g: guard{db: db}}
}

func (repo *doctorRepository) FindAll(_ context.Context) ([]*entity.Doctor, error) {
	defer repo.g.read()()

	out := make([]*entity.Doctor, 0, len(repo.g.db.doctors))
	for _, d := range repo.g.db.doctors {
		out = append(out, cloneDoctor(d))
	}

	return out, nil
}

func (repo *doctorRepository) FindByID(_ context.Context, id string) (*entity.Doctor, error) {
	defer repo.g.read()()

	for _, d := range repo.g.db.doctors {
		if d.ID == id {
			return cloneDoctor(d), nil
		}
	}

	return nil, repository.ErrDoctorNotFound
}
