// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/subtle"

	"clinic/config"
	"clinic/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// adminVerifier accepts exactly one configured username/password pair.
// Only a bcrypt hash of the password is kept after construction.
type adminVerifier struct {
	username     string
	passwordHash []byte
}

// NewAdminVerifier is the constructor for adminVerifier, reading the pair from cfg.Admin.
func NewAdminVerifier(cfg *config.Config) (service.CredentialVerifier, error) {
	return newAdminVerifier(cfg.Admin.Username, cfg.Admin.Password, bcrypt.DefaultCost)
}

func newAdminVerifier(username, password string, cost int) (*adminVerifier, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password must be configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	return &adminVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

// VerifyAdmin compares username in constant time and password against the stored hash.
func (v *adminVerifier) VerifyAdmin(_ context.Context, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	// bcrypt runs even when the username is wrong.
	passOK := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil

	return userOK && passOK
}
