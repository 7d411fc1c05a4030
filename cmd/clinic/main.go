package main

import (
	"context"
	"log/slog"

	"clinic/config"
	"clinic/internal/domain/availability"
	"clinic/internal/domain/lifecycle"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/infra/auth"
	logs "clinic/internal/infra/log"
	"clinic/internal/infra/persistence/memory"
	"clinic/internal/infra/persistence/sqlite"
	"clinic/internal/usecase"
	"clinic/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type snapshotParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type startupParams struct {
	fx.In
	fx.Lifecycle

	Logger       *slog.Logger
	Session      usecase.SessionUsecase
	Catalog      usecase.CatalogUsecase
	Reports      usecase.ReportUsecase
	Availability *availability.Generator
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			startClinic,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewSeededDatabase,
			memory.NewDoctorRepository,
			memory.NewAppointmentRepository,
			memory.NewReviewRepository,
			memory.NewTransactionManager,
			newSnapshotRepository,
		),
	)
}

// newSnapshotRepository picks the session snapshot store named by session.store.
func newSnapshotRepository(params snapshotParams) (repository.SnapshotRepository, error) {
	switch params.Config.Session.Store {
	case config.SnapshotStoreMemory:
		return memory.NewSnapshotRepository(), nil
	case config.SnapshotStoreSQLite:
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return sqlite.NewSnapshotRepository(db), nil
	default:
		return nil, errors.Errorf("unknown session store %q", params.Config.Session.Store)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewAdminVerifier,
			newClock,
			newIDGenerator,
			newAvailabilityGenerator,
		),
	)
}

func newClock() service.Clock {
	return service.SystemClock
}

func newIDGenerator() service.IDGenerator {
	return service.UUIDGenerator{}
}

func newAvailabilityGenerator(cfg *config.Config, clock service.Clock) *availability.Generator {
	return availability.NewGenerator(clock, cfg.Booking.HorizonDays)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAppointmentService,
			impl.NewReviewService,
			impl.NewReportService,
			impl.NewProfileService,
			impl.NewSessionService,
			newSessionCapability,
		),
	)
}

// newSessionCapability hands the store the session as its only source of authority.
func newSessionCapability(session usecase.SessionUsecase) service.Capability {
	return session
}

// startClinic restores the previous session and logs what the store holds.
func startClinic(params startupParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()
			ctx = logctx.Begin(ctx, params.Logger)

			if err := params.Session.Restore(ctx); err != nil {
				return errors.Wrap(err, "failed to restore session")
			}

			doctors, err := params.Catalog.ListDoctors(ctx)
			if err != nil {
				return err
			}
			stats, err := params.Reports.Dashboard(ctx)
			if err != nil {
				return err
			}
			dates := params.Availability.AvailableDates()

			state := params.Session.Current()
			logctx.GetLoggerOrDefault(ctx, params.Logger).Info("Clinic store ready",
				slog.Int("doctors", len(doctors)),
				slog.Int("reviews", stats.TotalReviews),
				slog.Int("appointments", stats.TotalAppointments),
				slog.Int("bookableDates", len(dates)),
				slog.Bool("patientSignedIn", state.IsAuthenticated()),
				slog.Bool("admin", state.Admin),
			)

			return nil
		},
	})
}
