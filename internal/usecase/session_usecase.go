package usecase

import (
	"context"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/service"
)

// RegisterInput defines the data required to create a patient account.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Phone    string
}

// SessionUsecase owns the signed-in patient and the administrator flag.
// Login, AdminLogin and Register are placeholders and do not verify identity.
// The session is also the Capability handed to admin-only store operations.
type SessionUsecase interface {
	service.Capability

	// Login accepts any non-empty email and password.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// AdminLogin reports whether username and password match the configured pair.
	AdminLogin(ctx context.Context, username, password string) (bool, error)

	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Logout clears the user and the admin flag and removes the snapshot.
	Logout(ctx context.Context) error

	// Current returns a copy of the session state.
	Current() entity.SessionState

	// Restore loads the snapshot written by a previous process.
	Restore(ctx context.Context) error
}
