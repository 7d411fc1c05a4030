package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/infra/persistence/memory"
	mockRepo "clinic/internal/mocks/repository"
	"clinic/internal/usecase"

	"github.com/stretchr/testify/mock"
)

var fixedToday = time.Date(2025, time.March, 7, 9, 30, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs hands out "id-1", "id-2", ... so assertions can name records.
type sequentialIDs struct {
	n atomic.Int64
}

func (g *sequentialIDs) NewID() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}

// testSession stands in for the session manager the store services are built with.
type testSession struct {
	admin     bool
	patientID string
}

func (s *testSession) IsAdmin() bool  { return s.admin }
func (s *testSession) UserID() string { return s.patientID }

// storeFixtures wires every store service to one seeded in-memory database.
type storeFixtures struct {
	db           *memory.Database
	session      *testSession
	catalog      usecase.CatalogUsecase
	appointments usecase.AppointmentUsecase
	reviews      usecase.ReviewUsecase
	reports      usecase.ReportUsecase
	profiles     usecase.ProfileUsecase
}

func createTestStore(t *testing.T) storeFixtures {
	t.Helper()

	db := memory.NewSeededDatabase()
	txManager := memory.NewTransactionManager(db)
	doctorRepo := memory.NewDoctorRepository(db)
	ids := &sequentialIDs{}
	clock := service.ClockFunc(func() time.Time { return fixedToday })
	session := &testSession{}
	logger := newTestLogger()

	return storeFixtures{
		db:           db,
		session:      session,
		catalog:      NewCatalogService(doctorRepo, logger),
		appointments: NewAppointmentService(txManager, memory.NewAppointmentRepository(db), ids, session, logger),
		reviews:      NewReviewService(txManager, doctorRepo, memory.NewReviewRepository(db), ids, clock, session, logger),
		reports:      NewReportService(txManager, logger),
		profiles:     NewProfileService(txManager, logger),
	}
}

func (f storeFixtures) asAdmin() {
	f.session.admin, f.session.patientID = true, ""
}

func (f storeFixtures) asPatient(patientID string) {
	f.session.admin, f.session.patientID = false, patientID
}

func (f storeFixtures) signedOut() {
	f.session.admin, f.session.patientID = false, ""
}

// onExecute makes txManager run fn against a mock factory prepared by setup and return want.
func onExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	want error,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)
			if err := fn(factory); err != nil {
				return err
			}

			return want
		})
}

func bookInput(patientID, date, slot string) usecase.BookAppointmentInput {
	return usecase.BookAppointmentInput{
		DoctorID:    "1",
		PatientID:   patientID,
		PatientName: "Patient " + patientID,
		Date:        date,
		Time:        slot,
	}
}
