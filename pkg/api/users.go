package api

import "github.com/jay4webdev/Bill-Tracker/internal/models"

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type CreateUserRequest struct {
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

// UpdateUserRequest edits an account. An empty Password keeps the current
// one.
type UpdateUserRequest struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Password string      `json:"password,omitempty"`
	Role     models.Role `json:"role"`
}

type UpdateUserResponse struct {
	User *User `json:"user"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

type DeleteUserResponse struct{}
