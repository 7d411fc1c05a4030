package memory

import (
	"context"
	"slices"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/pkg/errors"
)

type reviewRepository struct {
	g guard
}

// NewReviewRepository is the constructor for the review collection.
func NewReviewRepository(db *Database) repository.ReviewRepository {
	return &reviewRepository{g: guard{db: db}}
}

func (repo *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	if review == nil || review.ID == "" {
		return errors.New("review id is required")
	}

	defer repo.g.write()()

	if repo.indexOf(review.ID) >= 0 {
		return errors.Errorf("review %s already exists", review.ID)
	}
	repo.g.db.reviews = append(repo.g.db.reviews, cloneReview(review))

	return nil
}

func (repo *reviewRepository) FindByID(_ context.Context, id string) (*entity.Review, error) {
	defer repo.g.read()()

	if i := repo.indexOf(id); i >= 0 {
		return cloneReview(repo.g.db.reviews[i]), nil
	}

	return nil, repository.ErrReviewNotFound
}

func (repo *reviewRepository) FindAll(_ context.Context) ([]*entity.Review, error) {
	return repo.filter(func(*entity.Review) bool { return true }), nil
}

func (repo *reviewRepository) FindByDoctorID(_ context.Context, doctorID string) ([]*entity.Review, error) {
	return repo.filter(func(r *entity.Review) bool { return r.DoctorID == doctorID }), nil
}

func (repo *reviewRepository) FindByPatientID(_ context.Context, patientID string) ([]*entity.Review, error) {
	return repo.filter(func(r *entity.Review) bool { return r.PatientID == patientID }), nil
}

func (repo *reviewRepository) ExistsForPatientAndDoctor(_ context.Context, patientID, doctorID string) (bool, error) {
	defer repo.g.read()()

	return slices.ContainsFunc(repo.g.db.reviews, func(r *entity.Review) bool {
		return r.PatientID == patientID && r.DoctorID == doctorID
	}), nil
}

func (repo *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	defer repo.g.write()()

	i := repo.indexOf(review.ID)
	if i < 0 {
		return repository.ErrReviewNotFound
	}
	repo.g.db.reviews[i] = cloneReview(review)

	return nil
}

func (repo *reviewRepository) Delete(_ context.Context, id string) error {
	defer repo.g.write()()

	i := repo.indexOf(id)
	if i < 0 {
		return repository.ErrReviewNotFound
	}
	repo.g.db.reviews = slices.Delete(slices.Clone(repo.g.db.reviews), i, i+1)

	return nil
}

// indexOf must be called with the lock held.
func (repo *reviewRepository) indexOf(id string) int {
	return slices.IndexFunc(repo.g.db.reviews, func(r *entity.Review) bool { return r.ID == id })
}

func (repo *reviewRepository) filter(keep func(*entity.Review) bool) []*entity.Review {
	defer repo.g.read()()

	out := []*entity.Review{}
	for _, r := range repo.g.db.reviews {
		if keep(r) {
			out = append(out, cloneReview(r))
		}
	}

	return out
}
