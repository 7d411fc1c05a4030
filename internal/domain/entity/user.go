package entity

// User is the signed-in patient held by the session. It exists only between login and logout.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// SessionState is a point-in-time copy of the session.
type SessionState struct {
	User  *User
	Admin bool
}

// IsAuthenticated reports whether a patient is signed in.
func (s SessionState) IsAuthenticated() bool {
	return s.User != nil
}
