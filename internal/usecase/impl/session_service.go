package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"clinic/config"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/logctx"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"
	"clinic/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const adminSnapshotValue = "true"

// sessionService implements the SessionUsecase interface.
// It holds at most one patient and the admin flag, mirrored to the snapshot repository.
type sessionService struct {
	fx.In

	snapshotRepo repository.SnapshotRepository
	verifier     service.CredentialVerifier
	idGenerator  service.IDGenerator
	latency      time.Duration
	logger       *slog.Logger

	mu    sync.RWMutex
	user  *entity.User
	admin bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	snapshotRepo repository.SnapshotRepository,
	verifier service.CredentialVerifier,
	idGenerator service.IDGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	var latency time.Duration
	if cfg != nil && cfg.Session != nil {
		latency = cfg.Session.SimulatedLatency
	}

	return &sessionService{
		snapshotRepo: snapshotRepo,
		verifier:     verifier,
		idGenerator:  idGenerator,
		latency:      latency,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return logctx.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs a patient in. Any non-empty email and password are accepted; the
// id is derived from the email so the same address always maps to the same patient.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("email and password are required")
	}

	if err := srv.simulateLatency(ctx); err != nil {
		return nil, errors.Wrap(err, "login interrupted")
	}

	user := &entity.User{
		ID:    patientIDForEmail(email),
		Name:  displayNameFromEmail(email),
		Email: email,
	}
	if err := srv.signIn(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	srv.log(ctx).Info("Patient logged in", slog.String("user_id", user.ID))

	return cloneUser(user), nil
}

// AdminLogin grants the admin capability when the credential pair matches.
// A mismatch is reported as false with a nil error.
func (srv *sessionService) AdminLogin(ctx context.Context, username, password string) (bool, error) {
	if err := srv.simulateLatency(ctx); err != nil {
		return false, errors.Wrap(err, "admin login interrupted")
	}

	if !srv.verifier.VerifyAdmin(ctx, username, password) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("username", username))

		return false, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.snapshotRepo.Put(ctx, repository.SnapshotKeyAdmin, adminSnapshotValue); err != nil {
		return false, errors.Wrap(err, "failed to save admin flag")
	}
	srv.admin = true

	srv.log(ctx).Info("Admin logged in")

	return true, nil
}

// Register creates a patient with a fresh id and signs them in.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	if err := srv.simulateLatency(ctx); err != nil {
		return nil, errors.Wrap(err, "registration interrupted")
	}

	user := &entity.User{
		ID:    srv.idGenerator.NewID(),
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	}
	if err := srv.signIn(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("Patient registered", slog.String("user_id", user.ID))

	return cloneUser(user), nil
}

// Logout clears the session. The in-memory state is cleared even if the snapshot cannot be removed,
// and every snapshot key is attempted before the failures are reported together.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.user = nil
	srv.admin = false

	var err error
	for _, key := range []string{repository.SnapshotKeyUser, repository.SnapshotKeyAdmin} {
		if deleteErr := srv.snapshotRepo.Delete(ctx, key); deleteErr != nil {
			err = multierr.Append(err, errors.Wrapf(deleteErr, "failed to remove snapshot key %s", key))
		}
	}
	if err != nil {
		srv.log(ctx).Error("Failed to clear session snapshot", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Session cleared")

	return nil
}

// Current returns a copy of the session state.
func (srv *sessionService) Current() entity.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.SessionState{
		User:  cloneUser(srv.user),
		Admin: srv.admin,
	}
}

// IsAdmin implements service.Capability.
func (srv *sessionService) IsAdmin() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.admin
}

// UserID implements service.Capability.
func (srv *sessionService) UserID() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.user == nil {
		return ""
	}

	return srv.user.ID
}

// Restore loads the snapshot. A user record that cannot be decoded is discarded, and so is
// an admin flag holding anything other than the value AdminLogin writes.
func (srv *sessionService) Restore(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	raw, err := srv.snapshotRepo.Get(ctx, repository.SnapshotKeyUser)
	switch {
	case err == nil:
		var user entity.User
		if jsonErr := json.Unmarshal([]byte(raw), &user); jsonErr != nil || user.ID == "" {
			srv.log(ctx).Warn("Discarding unreadable user snapshot", slog.Any("error", jsonErr))
			if err := srv.snapshotRepo.Delete(ctx, repository.SnapshotKeyUser); err != nil {
				return errors.Wrap(err, "failed to discard user snapshot")
			}
		} else {
			srv.user = &user
		}
	case !errors.Is(err, repository.ErrSnapshotKeyNotFound):
		return errors.Wrap(err, "failed to read user snapshot")
	}

	flag, err := srv.snapshotRepo.Get(ctx, repository.SnapshotKeyAdmin)
	switch {
	case err == nil && flag == adminSnapshotValue:
		srv.admin = true
	case err == nil:
		srv.log(ctx).Warn("Discarding unrecognised admin snapshot")
		if err := srv.snapshotRepo.Delete(ctx, repository.SnapshotKeyAdmin); err != nil {
			return errors.Wrap(err, "failed to discard admin snapshot")
		}
	case !errors.Is(err, repository.ErrSnapshotKeyNotFound):
		return errors.Wrap(err, "failed to read admin snapshot")
	}

	srv.log(ctx).Info("Session restored",
		slog.Bool("patient", srv.user != nil),
		slog.Bool("admin", srv.admin),
	)

	return nil
}

// signIn saves user to the snapshot, then makes it the current patient.
func (srv *sessionService) signIn(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode user")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.snapshotRepo.Put(ctx, repository.SnapshotKeyUser, string(payload)); err != nil {
		return errors.Wrap(err, "failed to save user snapshot")
	}
	srv.user = cloneUser(user)

	return nil
}

func (srv *sessionService) simulateLatency(ctx context.Context) error {
	if srv.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(srv.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// patientIDForEmail derives a stable UUIDv5 from the lower-cased email address.
func patientIDForEmail(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))).String()
}

// displayNameFromEmail returns the part of email before the first "@".
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}

	return local
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	c := *user

	return &c
}
