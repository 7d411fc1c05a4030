package impl

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	mockRepo "clinic/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorIDs(doctors []*entity.Doctor) []string {
	ids := make([]string, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}

	return ids
}

func TestCatalogService_ListAndGet(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	doctors, err := fx.catalog.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, doctorIDs(doctors))

	doctor, err := fx.catalog.GetDoctor(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen", doctor.Name)
	assert.Equal(t, 250, doctor.ConsultationFee)

	_, err = fx.catalog.GetDoctor(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestCatalogService_SearchDoctors(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter entity.DoctorFilter
		want   []string
	}{
		{name: "no filter", filter: entity.DoctorFilter{}, want: []string{"1", "2", "3", "4"}},
		{name: "all specialties", filter: entity.DoctorFilter{Specialty: "all"}, want: []string{"1", "2", "3", "4"}},
		{name: "name match ignores case", filter: entity.DoctorFilter{Term: "CHEN"}, want: []string{"2"}},
		{name: "specialty term", filter: entity.DoctorFilter{Term: "logist"}, want: []string{"1", "2"}},
		{name: "specialty filter", filter: entity.DoctorFilter{Specialty: "Pediatrician"}, want: []string{"3"}},
		{name: "term and specialty", filter: entity.DoctorFilter{Term: "dr.", Specialty: "Orthopedic Surgeon"}, want: []string{"4"}},
		{name: "no match", filter: entity.DoctorFilter{Term: "dermatology"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors, err := fx.catalog.SearchDoctors(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doctorIDs(doctors))
		})
	}
}

func TestCatalogService_Specialties(t *testing.T) {
	fx := createTestStore(t)

	specialties, err := fx.catalog.Specialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiologist", "Neurologist", "Pediatrician", "Orthopedic Surgeon"}, specialties)
}

func TestCatalogService_RepositoryError(t *testing.T) {
	doctorRepo := mockRepo.NewMockDoctorRepository(t)
	svc := NewCatalogService(doctorRepo, newTestLogger())
	ctx := context.Background()

	doctorRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))
	doctorRepo.EXPECT().FindByID(ctx, "1").Return(nil, errors.New("db error"))

	_, err := svc.SearchDoctors(ctx, entity.DoctorFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list doctors")

	_, err = svc.GetDoctor(ctx, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find doctor")
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
