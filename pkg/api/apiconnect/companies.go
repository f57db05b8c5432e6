package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/pkg/api"
)

// CompanyServiceName is the fully-qualified name of the CompanyService service.
const CompanyServiceName = "billtracker.v1.CompanyService"

// These constants are the fully-qualified names of the RPCs defined in this
// service. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// CompanyServiceListCompaniesProcedure is the fully-qualified name of the CompanyService's ListCompanies RPC.
	CompanyServiceListCompaniesProcedure = "/billtracker.v1.CompanyService/ListCompanies"
	// CompanyServiceAddCompanyProcedure is the fully-qualified name of the CompanyService's AddCompany RPC.
	CompanyServiceAddCompanyProcedure = "/billtracker.v1.CompanyService/AddCompany"
	// CompanyServiceDeleteCompanyProcedure is the fully-qualified name of the CompanyService's DeleteCompany RPC.
	CompanyServiceDeleteCompanyProcedure = "/billtracker.v1.CompanyService/DeleteCompany"
)

// CompanyServiceClient is a client for the billtracker.v1.CompanyService service.
type CompanyServiceClient interface {
	ListCompanies(context.Context, *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error)
	AddCompany(context.Context, *connect.Request[api.AddCompanyRequest]) (*connect.Response[api.AddCompanyResponse], error)
	DeleteCompany(context.Context, *connect.Request[api.DeleteCompanyRequest]) (*connect.Response[api.DeleteCompanyResponse], error)
}

// NewCompanyServiceClient constructs a client for the billtracker.v1.CompanyService service.
// Messages are sent as JSON. The URL supplied here should be the base URL
// of the server (for example, http://api.acme.com or https://acme.com/grpc).
func NewCompanyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CompanyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &companyServiceClient{
		listCompanies: connect.NewClient[api.ListCompaniesRequest, api.ListCompaniesResponse](
			httpClient,
			baseURL+CompanyServiceListCompaniesProcedure,
			opts...,
		),
		addCompany: connect.NewClient[api.AddCompanyRequest, api.AddCompanyResponse](
			httpClient,
			baseURL+CompanyServiceAddCompanyProcedure,
			opts...,
		),
		deleteCompany: connect.NewClient[api.DeleteCompanyRequest, api.DeleteCompanyResponse](
			httpClient,
			baseURL+CompanyServiceDeleteCompanyProcedure,
			opts...,
		),
	}
}

// companyServiceClient implements CompanyServiceClient.
type companyServiceClient struct {
	listCompanies *connect.Client[api.ListCompaniesRequest, api.ListCompaniesResponse]
	addCompany    *connect.Client[api.AddCompanyRequest, api.AddCompanyResponse]
	deleteCompany *connect.Client[api.DeleteCompanyRequest, api.DeleteCompanyResponse]
}

// ListCompanies calls billtracker.v1.CompanyService.ListCompanies.
func (c *companyServiceClient) ListCompanies(ctx context.Context, req *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error) {
	return c.listCompanies.CallUnary(ctx, req)
}

// AddCompany calls billtracker.v1.CompanyService.AddCompany.
func (c *companyServiceClient) AddCompany(ctx context.Context, req *connect.Request[api.AddCompanyRequest]) (*connect.Response[api.AddCompanyResponse], error) {
	return c.addCompany.CallUnary(ctx, req)
}

// DeleteCompany calls billtracker.v1.CompanyService.DeleteCompany.
func (c *companyServiceClient) DeleteCompany(ctx context.Context, req *connect.Request[api.DeleteCompanyRequest]) (*connect.Response[api.DeleteCompanyResponse], error) {
	return c.deleteCompany.CallUnary(ctx, req)
}

// CompanyServiceHandler is an implementation of the billtracker.v1.CompanyService service.
// It manages the company registry.
type CompanyServiceHandler interface {
	ListCompanies(context.Context, *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error)
	AddCompany(context.Context, *connect.Request[api.AddCompanyRequest]) (*connect.Response[api.AddCompanyResponse], error)
	DeleteCompany(context.Context, *connect.Request[api.DeleteCompanyRequest]) (*connect.Response[api.DeleteCompanyResponse], error)
}

// NewCompanyServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCompanyServiceHandler(svc CompanyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	companyServiceListCompaniesHandler := connect.NewUnaryHandler(
		CompanyServiceListCompaniesProcedure,
		svc.ListCompanies,
		opts...,
	)
	companyServiceAddCompanyHandler := connect.NewUnaryHandler(
		CompanyServiceAddCompanyProcedure,
		svc.AddCompany,
		opts...,
	)
	companyServiceDeleteCompanyHandler := connect.NewUnaryHandler(
		CompanyServiceDeleteCompanyProcedure,
		svc.DeleteCompany,
		opts...,
	)
	return "/billtracker.v1.CompanyService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CompanyServiceListCompaniesProcedure:
			companyServiceListCompaniesHandler.ServeHTTP(w, r)
		case CompanyServiceAddCompanyProcedure:
			companyServiceAddCompanyHandler.ServeHTTP(w, r)
		case CompanyServiceDeleteCompanyProcedure:
			companyServiceDeleteCompanyHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCompanyServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCompanyServiceHandler struct{}

func (UnimplementedCompanyServiceHandler) ListCompanies(context.Context, *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CompanyService.ListCompanies is not implemented"))
}

func (UnimplementedCompanyServiceHandler) AddCompany(context.Context, *connect.Request[api.AddCompanyRequest]) (*connect.Response[api.AddCompanyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CompanyService.AddCompany is not implemented"))
}

func (UnimplementedCompanyServiceHandler) DeleteCompany(context.Context, *connect.Request[api.DeleteCompanyRequest]) (*connect.Response[api.DeleteCompanyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.CompanyService.DeleteCompany is not implemented"))
}
