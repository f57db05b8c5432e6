package auth

import (
	"context"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, SSO, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given username, role and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, username, fullName, credential string, role models.Role) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// Hash validates a credential and returns the form to store.
	Hash(credential string) (string, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
