package service

// Capability is what the domain store checks before admin-only or owner-only mutations.
// The session manager is the only production implementation; the store receives it at
// construction and never takes one from the caller of an operation.
type Capability interface {
	// IsAdmin reports whether the administrator capability is held.
	IsAdmin() bool

	// UserID is the signed-in patient id, or "" when no patient is signed in.
	UserID() string
}
