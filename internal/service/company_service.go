package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

// CompanyService implements the Connect CompanyService. Editors may add
// companies; only admins may remove them.
type CompanyService struct {
	apiconnect.UnimplementedCompanyServiceHandler
	state  *state.Controller
	logger *slog.Logger
}

// NewCompanyService creates a CompanyService.
func NewCompanyService(st *state.Controller, logger *slog.Logger) *CompanyService {
	return &CompanyService{state: st, logger: logger}
}

func (s *CompanyService) ListCompanies(ctx context.Context, req *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ListCompaniesResponse{Companies: s.state.Companies()}), nil
}

func (s *CompanyService) AddCompany(ctx context.Context, req *connect.Request[api.AddCompanyRequest]) (*connect.Response[api.AddCompanyResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	if err := s.state.AddCompany(ctx, req.Msg.Name); err != nil {
		return nil, toConnectError(err)
	}
	s.logger.Info("Company added", "name", req.Msg.Name)
	return connect.NewResponse(&api.AddCompanyResponse{Companies: s.state.Companies()}), nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, req *connect.Request[api.DeleteCompanyRequest]) (*connect.Response[api.DeleteCompanyResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.state.DeleteCompany(ctx, req.Msg.Name); err != nil {
		s.logger.Warn("DeleteCompany failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}
	s.logger.Info("Company deleted", "name", req.Msg.Name)
	return connect.NewResponse(&api.DeleteCompanyResponse{Companies: s.state.Companies()}), nil
}
