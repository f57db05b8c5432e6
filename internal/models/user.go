package models

import "time"

// Role determines what a user may change.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Username is unique and used for login.
	Username string `json:"username"`

	// PasswordHash is a bcrypt hash. The plaintext is never stored.
	PasswordHash string `json:"passwordHash"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	Role Role `json:"role"`

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a new user with the given details and a fresh timestamp.
// The caller assigns the ID.
func NewUser(username, fullName, passwordHash string, role Role) *User {
	return &User{
		Username:     username,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().Unix(),
	}
}
