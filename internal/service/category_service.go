package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

// CategoryService implements the Connect CategoryService. Reading is open
// to every role; changes are admin-only.
type CategoryService struct {
	apiconnect.UnimplementedCategoryServiceHandler
	state  *state.Controller
	logger *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(st *state.Controller, logger *slog.Logger) *CategoryService {
	return &CategoryService{state: st, logger: logger}
}

func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: s.state.Categories()}), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	cat, err := s.state.CreateCategory(ctx, req.Msg.Name, req.Msg.Subcategories)
	if err != nil {
		s.logger.Warn("CreateCategory failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Category created", "category_id", cat.ID, "name", cat.Name)
	return connect.NewResponse(&api.CreateCategoryResponse{Category: cat}), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.state.DeleteCategory(ctx, req.Msg.ID); err != nil {
		s.logger.Warn("DeleteCategory failed", "category_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Category deleted", "category_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteCategoryResponse{}), nil
}

func (s *CategoryService) AddSubcategory(ctx context.Context, req *connect.Request[api.AddSubcategoryRequest]) (*connect.Response[api.AddSubcategoryResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	cat, err := s.state.AddSubcategory(ctx, req.Msg.CategoryID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddSubcategoryResponse{Category: cat}), nil
}

func (s *CategoryService) RemoveSubcategory(ctx context.Context, req *connect.Request[api.RemoveSubcategoryRequest]) (*connect.Response[api.RemoveSubcategoryResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	cat, err := s.state.RemoveSubcategory(ctx, req.Msg.CategoryID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RemoveSubcategoryResponse{Category: cat}), nil
}
