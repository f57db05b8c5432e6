package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/pkg/api"
)

// CategoryServiceName is the fully-qualified name of the CategoryService service.
const CategoryServiceName = "billtracker.v1.CategoryService"

// These constants are the fully-qualified names of the RPCs defined in this
// service. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// CategoryServiceListCategoriesProcedure is the fully-qualified name of the CategoryService's ListCategories RPC.
	CategoryServiceListCategoriesProcedure = "/billtracker.v1.CategoryService/ListCategories"
	// CategoryServiceCreateCategoryProcedure is the fully-qualified name of the CategoryService's CreateCategory RPC.
	CategoryServiceCreateCategoryProcedure = "/billtracker.v1.CategoryService/CreateCategory"
	// CategoryServiceDeleteCategoryProcedure is the fully-qualified name of the CategoryService's DeleteCategory RPC.
	CategoryServiceDeleteCategoryProcedure = "/billtracker.v1.CategoryService/DeleteCategory"
	// CategoryServiceAddSubcategoryProcedure is the fully-qualified name of the CategoryService's AddSubcategory RPC.
	CategoryServiceAddSubcategoryProcedure = "/billtracker.v1.CategoryService/AddSubcategory"
	// CategoryServiceRemoveSubcategoryProcedure is the fully-qualified name of the CategoryService's RemoveSubcategory RPC.
	CategoryServiceRemoveSubcategoryProcedure = "/billtracker.v1.CategoryService/RemoveSubcategory"
)

// CategoryServiceClient is a client for the billtracker.v1.CategoryService service.
type CategoryServiceClient interface {
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
	AddSubcategory(context.Context, *connect.Request[api.AddSubcategoryRequest]) (*connect.Response[api.AddSubcategoryResponse], error)
	RemoveSubcategory(context.Context, *connect.Request[api.RemoveSubcategoryRequest]) (*connect.Response[api.RemoveSubcategoryResponse], error)
}

// NewCategoryServiceClient constructs a client for the billtracker.v1.CategoryService service.
// Messages are sent as JSON. The URL supplied here should be the base URL
// of the server (for example, http://api.acme.com or https://acme.com/grpc).
func NewCategoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CategoryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &categoryServiceClient{
		listCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](
			httpClient,
			baseURL+CategoryServiceListCategoriesProcedure,
			opts...,
		),
		createCategory: connect.NewClient[api.CreateCategoryRequest, api.CreateCategoryResponse](
			httpClient,
			baseURL+CategoryServiceCreateCategoryProcedure,
			opts...,
		),
		deleteCategory: connect.NewClient[api.DeleteCategoryRequest, api.DeleteCategoryResponse](
			httpClient,
			baseURL+CategoryServiceDeleteCategoryProcedure,
			opts...,
		),
		addSubcategory: connect.NewClient[api.AddSubcategoryRequest, api.AddSubcategoryResponse](
			httpClient,
			baseURL+CategoryServiceAddSubcategoryProcedure,
			opts...,
		),
		removeSubcategory: connect.NewClient[api.RemoveSubcategoryRequest, api.RemoveSubcategoryResponse](
			httpClient,
			baseURL+CategoryServiceRemoveSubcategoryProcedure,
			opts...,
		),
	}
}

// categoryServiceClient implements CategoryServiceClient.
type categoryServiceClient struct {
	listCategories    *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	createCategory    *connect.Client[api.CreateCategoryRequest, api.CreateCategoryResponse]
	deleteCategory    *connect.Client[api.DeleteCategoryRequest, api.DeleteCategoryResponse]
	addSubcategory    *connect.Client[api.AddSubcategoryRequest, api.AddSubcategoryResponse]
	removeSubcategory *connect.Client[api.RemoveSubcategoryRequest, api.RemoveSubcategoryResponse]
}

// ListCategories calls billtracker.v1.CategoryService.ListCategories.
func (c *categoryServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// CreateCategory calls billtracker.v1.CategoryService.CreateCategory.
func (c *categoryServiceClient) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

// DeleteCategory calls billtracker.v1.CategoryService.DeleteCategory.
func (c *categoryServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

// AddSubcategory calls billtracker.v1.CategoryService.AddSubcategory.
func (c *categoryServiceClient) AddSubcategory(ctx context.Context, req *connect.Request[api.AddSubcategoryRequest]) (*connect.Response[api.AddSubcategoryResponse], error) {
	return c.addSubcategory.CallUnary(ctx, req)
}

// RemoveSubcategory calls billtracker.v1.CategoryService.RemoveSubcategory.
func (c *categoryServiceClient) RemoveSubcategory(ctx context.Context, req *connect.Request[api.RemoveSubcategoryRequest]) (*connect.Response[api.RemoveSubcategoryResponse], error) {
	return c.removeSubcategory.CallUnary(ctx, req)
}

// CategoryServiceHandler is an implementation of the billtracker.v1.CategoryService service.
// It manages bill categories and their subcategories.
type CategoryServiceHandler interface {
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
	AddSubcategory(context.Context, *connect.Request[api.AddSubcategoryRequest]) (*connect.Response[api.AddSubcategoryResponse], error)
	RemoveSubcategory(context.Context, *connect.Request[api.RemoveSubcategoryRequest]) (*connect.Response[api.RemoveSubcategoryResponse], error)
}

// NewCategoryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCategoryServiceHandler(svc CategoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	categoryServiceListCategoriesHandler := connect.NewUnaryHandler(
		CategoryServiceListCategoriesProcedure,
		svc.ListCategories,
		opts...,
	)
	categoryServiceCreateCategoryHandler := connect.NewUnaryHandler(
		CategoryServiceCreateCategoryProcedure,
		svc.CreateCategory,
		opts...,
	)
	categoryServiceDeleteCategoryHandler := connect.NewUnaryHandler(
		CategoryServiceDeleteCategoryProcedure,
		svc.DeleteCategory,
		opts...,
	)
	categoryServiceAddSubcategoryHandler := connect.NewUnaryHandler(
		CategoryServiceAddSubcategoryProcedure,
		svc.AddSubcategory,
		opts...,
	)
	categoryServiceRemoveSubcategoryHandler := connect.NewUnaryHandler(
		CategoryServiceRemoveSubcategoryProcedure,
		svc.RemoveSubcategory,
		opts...,
	)
	return "/billtracker.v1.CategoryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CategoryServiceListCategoriesProcedure:
			categoryServiceListCategoriesHandler.ServeHTTP(w, r)
		case CategoryServiceCreateCategoryProcedure:
			categoryServiceCreateCategoryHandler.ServeHTTP(w, r)
		case CategoryServiceDeleteCategoryProcedure:
			categoryServiceDeleteCategoryHandler.ServeHTTP(w, r)
		case CategoryServiceAddSubcategoryProcedure:
			categoryServiceAddSubcategoryHandler.ServeHTTP(w, r)
		case CategoryServiceRemoveSubcategoryProcedure:
			categoryServiceRemoveSubcategoryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCategoryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCategoryServiceHandler struct{}

func (UnimplementedCategoryServiceHandler) ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CategoryService.ListCategories is not implemented"))
}

func (UnimplementedCategoryServiceHandler) CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CategoryService.CreateCategory is not implemented"))
}

func (UnimplementedCategoryServiceHandler) DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CategoryService.DeleteCategory is not implemented"))
}

func (UnimplementedCategoryServiceHandler) AddSubcategory(context.Context, *connect.Request[api.AddSubcategoryRequest]) (*connect.Response[api.AddSubcategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CategoryService.AddSubcategory is not implemented"))
}

func (UnimplementedCategoryServiceHandler) RemoveSubcategory(context.Context, *connect.Request[api.RemoveSubcategoryRequest]) (*connect.Response[api.RemoveSubcategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CategoryService.RemoveSubcategory is not implemented"))
}
