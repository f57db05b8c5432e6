package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/pkg/api"
)

// BillServiceName is the fully-qualified name of the BillService service.
const BillServiceName = "billtracker.v1.BillService"

// These constants are the fully-qualified names of the RPCs defined in this
// service. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// BillServiceListBillsProcedure is the fully-qualified name of the BillService's ListBills RPC.
	BillServiceListBillsProcedure = "/billtracker.v1.BillService/ListBills"
	// BillServiceGetBillProcedure is the fully-qualified name of the BillService's GetBill RPC.
	BillServiceGetBillProcedure = "/billtracker.v1.BillService/GetBill"
	// BillServiceCreateBillProcedure is the fully-qualified name of the BillService's CreateBill RPC.
	BillServiceCreateBillProcedure = "/billtracker.v1.BillService/CreateBill"
	// BillServiceUpdateBillProcedure is the fully-qualified name of the BillService's UpdateBill RPC.
	BillServiceUpdateBillProcedure = "/billtracker.v1.BillService/UpdateBill"
	// BillServiceDeleteBillProcedure is the fully-qualified name of the BillService's DeleteBill RPC.
	BillServiceDeleteBillProcedure = "/billtracker.v1.BillService/DeleteBill"
	// BillServiceToggleBillStatusProcedure is the fully-qualified name of the BillService's ToggleBillStatus RPC.
	BillServiceToggleBillStatusProcedure = "/billtracker.v1.BillService/ToggleBillStatus"
	// BillServiceImportBillsProcedure is the fully-qualified name of the BillService's ImportBills RPC.
	BillServiceImportBillsProcedure = "/billtracker.v1.BillService/ImportBills"
	// BillServiceGetDashboardProcedure is the fully-qualified name of the BillService's GetDashboard RPC.
	BillServiceGetDashboardProcedure = "/billtracker.v1.BillService/GetDashboard"
	// BillServiceGetCalendarProcedure is the fully-qualified name of the BillService's GetCalendar RPC.
	BillServiceGetCalendarProcedure = "/billtracker.v1.BillService/GetCalendar"
)

// BillServiceClient is a client for the billtracker.v1.BillService service.
type BillServiceClient interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ToggleBillStatus(context.Context, *connect.Request[api.ToggleBillStatusRequest]) (*connect.Response[api.ToggleBillStatusResponse], error)
	ImportBills(context.Context, *connect.Request[api.ImportBillsRequest]) (*connect.Response[api.ImportBillsResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	GetCalendar(context.Context, *connect.Request[api.GetCalendarRequest]) (*connect.Response[api.GetCalendarResponse], error)
}

// NewBillServiceClient constructs a client for the billtracker.v1.BillService service.
// Messages are sent as JSON. The URL supplied here should be the base URL
// of the server (for example, http://api.acme.com or https://acme.com/grpc).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &billServiceClient{
		listBills: connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](
			httpClient,
			baseURL+BillServiceListBillsProcedure,
			opts...,
		),
		getBill: connect.NewClient[api.GetBillRequest, api.GetBillResponse](
			httpClient,
			baseURL+BillServiceGetBillProcedure,
			opts...,
		),
		createBill: connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](
			httpClient,
			baseURL+BillServiceCreateBillProcedure,
			opts...,
		),
		updateBill: connect.NewClient[api.UpdateBillRequest, api.UpdateBillResponse](
			httpClient,
			baseURL+BillServiceUpdateBillProcedure,
			opts...,
		),
		deleteBill: connect.NewClient[api.DeleteBillRequest, api.DeleteBillResponse](
			httpClient,
			baseURL+BillServiceDeleteBillProcedure,
			opts...,
		),
		toggleBillStatus: connect.NewClient[api.ToggleBillStatusRequest, api.ToggleBillStatusResponse](
			httpClient,
			baseURL+BillServiceToggleBillStatusProcedure,
			opts...,
		),
		importBills: connect.NewClient[api.ImportBillsRequest, api.ImportBillsResponse](
			httpClient,
			baseURL+BillServiceImportBillsProcedure,
			opts...,
		),
		getDashboard: connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](
			httpClient,
			baseURL+BillServiceGetDashboardProcedure,
			opts...,
		),
		getCalendar: connect.NewClient[api.GetCalendarRequest, api.GetCalendarResponse](
			httpClient,
			baseURL+BillServiceGetCalendarProcedure,
			opts...,
		),
	}
}

// billServiceClient implements BillServiceClient.
type billServiceClient struct {
	listBills        *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	getBill          *connect.Client[api.GetBillRequest, api.GetBillResponse]
	createBill       *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	updateBill       *connect.Client[api.UpdateBillRequest, api.UpdateBillResponse]
	deleteBill       *connect.Client[api.DeleteBillRequest, api.DeleteBillResponse]
	toggleBillStatus *connect.Client[api.ToggleBillStatusRequest, api.ToggleBillStatusResponse]
	importBills      *connect.Client[api.ImportBillsRequest, api.ImportBillsResponse]
	getDashboard     *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
	getCalendar      *connect.Client[api.GetCalendarRequest, api.GetCalendarResponse]
}

// ListBills calls billtracker.v1.BillService.ListBills.
func (c *billServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// GetBill calls billtracker.v1.BillService.GetBill.
func (c *billServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

// CreateBill calls billtracker.v1.BillService.CreateBill.
func (c *billServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

// UpdateBill calls billtracker.v1.BillService.UpdateBill.
func (c *billServiceClient) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

// DeleteBill calls billtracker.v1.BillService.DeleteBill.
func (c *billServiceClient) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

// ToggleBillStatus calls billtracker.v1.BillService.ToggleBillStatus.
func (c *billServiceClient) ToggleBillStatus(ctx context.Context, req *connect.Request[api.ToggleBillStatusRequest]) (*connect.Response[api.ToggleBillStatusResponse], error) {
	return c.toggleBillStatus.CallUnary(ctx, req)
}

// ImportBills calls billtracker.v1.BillService.ImportBills.
func (c *billServiceClient) ImportBills(ctx context.Context, req *connect.Request[api.ImportBillsRequest]) (*connect.Response[api.ImportBillsResponse], error) {
	return c.importBills.CallUnary(ctx, req)
}

// GetDashboard calls billtracker.v1.BillService.GetDashboard.
func (c *billServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

// GetCalendar calls billtracker.v1.BillService.GetCalendar.
func (c *billServiceClient) GetCalendar(ctx context.Context, req *connect.Request[api.GetCalendarRequest]) (*connect.Response[api.GetCalendarResponse], error) {
	return c.getCalendar.CallUnary(ctx, req)
}

// BillServiceHandler is an implementation of the billtracker.v1.BillService service.
// It manages bills and the views derived from them.
type BillServiceHandler interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ToggleBillStatus(context.Context, *connect.Request[api.ToggleBillStatusRequest]) (*connect.Response[api.ToggleBillStatusResponse], error)
	ImportBills(context.Context, *connect.Request[api.ImportBillsRequest]) (*connect.Response[api.ImportBillsResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	GetCalendar(context.Context, *connect.Request[api.GetCalendarRequest]) (*connect.Response[api.GetCalendarResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	billServiceListBillsHandler := connect.NewUnaryHandler(
		BillServiceListBillsProcedure,
		svc.ListBills,
		opts...,
	)
	billServiceGetBillHandler := connect.NewUnaryHandler(
		BillServiceGetBillProcedure,
		svc.GetBill,
		opts...,
	)
	billServiceCreateBillHandler := connect.NewUnaryHandler(
		BillServiceCreateBillProcedure,
		svc.CreateBill,
		opts...,
	)
	billServiceUpdateBillHandler := connect.NewUnaryHandler(
		BillServiceUpdateBillProcedure,
		svc.UpdateBill,
		opts...,
	)
	billServiceDeleteBillHandler := connect.NewUnaryHandler(
		BillServiceDeleteBillProcedure,
		svc.DeleteBill,
		opts...,
	)
	billServiceToggleBillStatusHandler := connect.NewUnaryHandler(
		BillServiceToggleBillStatusProcedure,
		svc.ToggleBillStatus,
		opts...,
	)
	billServiceImportBillsHandler := connect.NewUnaryHandler(
		BillServiceImportBillsProcedure,
		svc.ImportBills,
		opts...,
	)
	billServiceGetDashboardHandler := connect.NewUnaryHandler(
		BillServiceGetDashboardProcedure,
		svc.GetDashboard,
		opts...,
	)
	billServiceGetCalendarHandler := connect.NewUnaryHandler(
		BillServiceGetCalendarProcedure,
		svc.GetCalendar,
		opts...,
	)
	return "/billtracker.v1.BillService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceListBillsProcedure:
			billServiceListBillsHandler.ServeHTTP(w, r)
		case BillServiceGetBillProcedure:
			billServiceGetBillHandler.ServeHTTP(w, r)
		case BillServiceCreateBillProcedure:
			billServiceCreateBillHandler.ServeHTTP(w, r)
		case BillServiceUpdateBillProcedure:
			billServiceUpdateBillHandler.ServeHTTP(w, r)
		case BillServiceDeleteBillProcedure:
			billServiceDeleteBillHandler.ServeHTTP(w, r)
		case BillServiceToggleBillStatusProcedure:
			billServiceToggleBillStatusHandler.ServeHTTP(w, r)
		case BillServiceImportBillsProcedure:
			billServiceImportBillsHandler.ServeHTTP(w, r)
		case BillServiceGetDashboardProcedure:
			billServiceGetDashboardHandler.ServeHTTP(w, r)
		case BillServiceGetCalendarProcedure:
			billServiceGetCalendarHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillServiceHandler struct{}

func (UnimplementedBillServiceHandler) ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.ListBills is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.GetBill is not implemented"))
}

func (UnimplementedBillServiceHandler) CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.CreateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.UpdateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.DeleteBill is not implemented"))
}

func (UnimplementedBillServiceHandler) ToggleBillStatus(context.Context, *connect.Request[api.ToggleBillStatusRequest]) (*connect.Response[api.ToggleBillStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.ToggleBillStatus is not implemented"))
}

func (UnimplementedBillServiceHandler) ImportBills(context.Context, *connect.Request[api.ImportBillsRequest]) (*connect.Response[api.ImportBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.ImportBills is not implemented"))
}

func (UnimplementedBillServiceHandler) GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.GetDashboard is not implemented"))
}

func (UnimplementedBillServiceHandler) GetCalendar(context.Context, *connect.Request[api.GetCalendarRequest]) (*connect.Response[api.GetCalendarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billtracker.v1.BillService.GetCalendar is not implemented"))
}
