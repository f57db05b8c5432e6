package middleware

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// UserKey is the context key for the authenticated user record.
	UserKey contextKey = "user"
)

// ErrUnknownUser is returned when a valid token names a user that no longer
// exists.
var ErrUnknownUser = errors.New("user no longer exists")

// UserLookup resolves a user ID to the current user record.
type UserLookup interface {
	UserByID(id string) (*models.User, error)
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetUser extracts the authenticated user from the context.
// Returns nil if not found.
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

// GetCapabilities returns what the authenticated user may do. Anonymous
// contexts get no capabilities.
func GetCapabilities(ctx context.Context) auth.Capabilities {
	user := GetUser(ctx)
	if user == nil {
		return auth.Capabilities{}
	}
	return auth.CapabilitiesFor(user.Role)
}

// WithUser returns a context carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID)
	return context.WithValue(ctx, UserKey, user)
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// RequireAuth returns a middleware that validates JWT tokens and requires
// authentication. The user is re-read on every call, so role changes apply
// immediately and deleted users lose access.
func RequireAuth(jwtManager *auth.JWTManager, users UserLookup) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			user, err := users.UserByID(claims.UserID)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, ErrUnknownUser)
			}

			return next(WithUser(ctx, user), req)
		}
	}
}

// OptionalAuth validates a token when one is present but lets anonymous
// requests through. Used by the login service so GetCurrentUser and Logout
// can see who is calling.
func OptionalAuth(jwtManager *auth.JWTManager, users UserLookup) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, err := bearerToken(req.Header().Get("Authorization"))
			if err == nil {
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					if user, err := users.UserByID(claims.UserID); err == nil {
						ctx = WithUser(ctx, user)
					}
				}
			}
			return next(ctx, req)
		}
	}
}
