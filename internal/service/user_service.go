package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/middleware"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

// UserService implements the Connect UserService. Every method is
// admin-only.
type UserService struct {
	apiconnect.UnimplementedUserServiceHandler
	state         *state.Controller
	authenticator auth.Authenticator
	logger        *slog.Logger
}

// NewUserService creates a UserService. New accounts are registered through
// authenticator so passwords are always hashed.
func NewUserService(st *state.Controller, authenticator auth.Authenticator, logger *slog.Logger) *UserService {
	return &UserService{state: st, authenticator: authenticator, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users := s.state.Users()
	out := make([]*api.User, len(users))
	for i := range users {
		out[i] = api.UserFromModel(&users[i])
	}
	return connect.NewResponse(&api.ListUsersResponse{Users: out}), nil
}

func (s *UserService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Username, req.Msg.FullName, req.Msg.Password, req.Msg.Role)
	if err != nil {
		s.logger.Warn("CreateUser failed", "username", req.Msg.Username, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return connect.NewResponse(&api.CreateUserResponse{User: api.UserFromModel(user)}), nil
}

func (s *UserService) UpdateUser(ctx context.Context, req *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UpdateUserResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	update := models.User{
		ID:       req.Msg.ID,
		Username: req.Msg.Username,
		FullName: req.Msg.FullName,
		Role:     req.Msg.Role,
	}
	if req.Msg.Password != "" {
		hash, err := s.authenticator.Hash(req.Msg.Password)
		if err != nil {
			return nil, toConnectError(err)
		}
		update.PasswordHash = hash
	}

	user, err := s.state.UpdateUser(ctx, update)
	if err != nil {
		s.logger.Warn("UpdateUser failed", "user_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User updated", "user_id", user.ID, "role", user.Role)
	return connect.NewResponse(&api.UpdateUserResponse{User: api.UserFromModel(&user)}), nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.state.DeleteUser(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Warn("DeleteUser failed", "user_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User deleted", "user_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteUserResponse{}), nil
}
