package service

import "context"

// CredentialVerifier decides whether an administrator username/password pair is accepted.
// The shipped implementation compares against a single configured pair and is a placeholder,
// not a security control.
type CredentialVerifier interface {
	VerifyAdmin(ctx context.Context, username, password string) bool
}
