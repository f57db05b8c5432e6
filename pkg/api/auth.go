package api

import (
	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// User is the public view of an account. The password hash never leaves
// the server.
type User struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	FullName  string      `json:"fullName"`
	Role      models.Role `json:"role"`
	CreatedAt int64       `json:"createdAt"`
}

// UserFromModel strips the password hash.
func UserFromModel(u *models.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User         *User        `json:"user"`
	Token        string       `json:"token"`
	Capabilities auth.Capabilities `json:"capabilities"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User         *User        `json:"user"`
	Capabilities auth.Capabilities `json:"capabilities"`
}
