// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	fx.In

	doctorRepo repository.DoctorRepository
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	doctorRepo repository.DoctorRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return logctx.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDoctors returns the catalog in seed order.
func (srv *catalogService) ListDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	doctors, err := srv.doctorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}

	return doctors, nil
}

// GetDoctor looks a doctor up by id.
func (srv *catalogService) GetDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, doctorLookupError(err, id)
	}

	return doctor, nil
}

// SearchDoctors filters the catalog the way the doctors page does.
func (srv *catalogService) SearchDoctors(ctx context.Context, filter entity.DoctorFilter) ([]*entity.Doctor, error) {
	doctors, err := srv.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Term))
	specialty := strings.TrimSpace(filter.Specialty)
	anySpecialty := specialty == "" || strings.EqualFold(specialty, entity.SpecialtyAll)

	matched := make([]*entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) {
			continue
		}
		if !anySpecialty && d.Specialty != specialty {
			continue
		}
		matched = append(matched, d)
	}

	srv.log(ctx).Debug("Searched doctors",
		slog.String("term", filter.Term),
		slog.String("specialty", filter.Specialty),
		slog.Int("count", len(matched)),
	)

	return matched, nil
}

// Specialties lists each specialty once, in catalog order.
func (srv *catalogService) Specialties(ctx context.Context) ([]string, error) {
	doctors, err := srv.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doctors))
	specialties := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		specialties = append(specialties, d.Specialty)
	}

	return specialties, nil
}

// doctorLookupError maps a repository miss to the domain NotFound error.
func doctorLookupError(err error, id string) error {
	if errors.Is(err, repository.ErrDoctorNotFound) {
		return domainerrors.ErrDoctorNotFound.WithDetails("id " + id)
	}

	return errors.Wrap(err, "failed to find doctor")
}
