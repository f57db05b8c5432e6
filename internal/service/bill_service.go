package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/jay4webdev/Bill-Tracker/internal/calculator"
	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/middleware"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
	"github.com/jay4webdev/Bill-Tracker/pkg/api"
	"github.com/jay4webdev/Bill-Tracker/pkg/api/apiconnect"
)

// BillService implements the Connect BillService.
type BillService struct {
	apiconnect.UnimplementedBillServiceHandler
	state  *state.Controller
	rates  calculator.Rates
	logger *slog.Logger
}

// NewBillService creates a BillService over the given state. rates convert
// dashboard totals into one currency.
func NewBillService(st *state.Controller, rates calculator.Rates, logger *slog.Logger) *BillService {
	return &BillService{state: st, rates: rates, logger: logger}
}

// ListBills returns the filtered, sorted bill list.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}

	all := s.state.Bills()
	bills := calculator.Apply(all, calculator.Query{
		Status:   req.Msg.Status,
		Company:  req.Msg.Company,
		Category: req.Msg.Category,
		SortBy:   req.Msg.SortBy,
		Desc:     req.Msg.Desc,
	})

	return connect.NewResponse(&api.ListBillsResponse{
		Bills:      bills,
		Companies:  calculator.DistinctCompanies(all),
		Categories: calculator.DistinctCategories(all),
	}), nil
}

// GetBill returns one bill.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}

	bill, err := s.state.Bill(req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetBillResponse{Bill: bill}), nil
}

// CreateBill adds a bill from the entry form.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	// IDs are always assigned by the server.
	in := req.Msg.Bill
	in.ID = ""

	bill, err := s.state.CreateBill(ctx, in)
	if err != nil {
		s.logger.Warn("CreateBill failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Bill created", "bill_id", bill.ID, "company", bill.CompanyName, "status", bill.Status)
	return connect.NewResponse(&api.CreateBillResponse{Bill: bill}), nil
}

// UpdateBill replaces an existing bill.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	bill, err := s.state.UpdateBill(ctx, req.Msg.Bill)
	if err != nil {
		s.logger.Warn("UpdateBill failed", "bill_id", req.Msg.Bill.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Bill updated", "bill_id", bill.ID, "status", bill.Status)
	return connect.NewResponse(&api.UpdateBillResponse{Bill: bill}), nil
}

// DeleteBill removes a bill.
func (s *BillService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	if err := s.state.DeleteBill(ctx, req.Msg.ID); err != nil {
		s.logger.Warn("DeleteBill failed", "bill_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Bill deleted", "bill_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteBillResponse{}), nil
}

// ToggleBillStatus flips a bill between Paid and unpaid. Viewers get an
// explicit permission error.
func (s *BillService) ToggleBillStatus(ctx context.Context, req *connect.Request[api.ToggleBillStatusRequest]) (*connect.Response[api.ToggleBillStatusResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	bill, err := s.state.ToggleBillStatus(ctx, req.Msg.ID)
	if err != nil {
		s.logger.Warn("ToggleBillStatus failed", "bill_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Bill status toggled", "bill_id", bill.ID, "status", bill.Status, "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&api.ToggleBillStatusResponse{Bill: bill}), nil
}

// ImportBills adds a batch from an uploaded spreadsheet or from pre-parsed
// rows. The batch is all-or-nothing.
func (s *BillService) ImportBills(ctx context.Context, req *connect.Request[api.ImportBillsRequest]) (*connect.Response[api.ImportBillsResponse], error) {
	if err := requireWrite(ctx); err != nil {
		return nil, err
	}

	rows := req.Msg.Rows
	if len(req.Msg.File) > 0 {
		decoded, err := importer.Decode(req.Msg.Filename, req.Msg.File)
		if err != nil {
			s.logger.Warn("ImportBills: failed to read file", "filename", req.Msg.Filename, "error", err)
			return nil, toConnectError(err)
		}
		rows = decoded
	}

	bills, err := s.state.ImportBills(ctx, rows)
	if err != nil {
		s.logger.Warn("ImportBills failed", "rows", len(rows), "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Bills imported", "count", len(bills), "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&api.ImportBillsResponse{
		Imported: len(bills),
		Bills:    bills,
	}), nil
}

// GetDashboard returns the summary figures over every bill.
func (s *BillService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}

	summary := calculator.Summarize(s.state.Bills(), s.rates)
	return connect.NewResponse(&api.GetDashboardResponse{Summary: summary}), nil
}

// GetCalendar groups bills by due day for one month. A zero year or month
// selects the current one.
func (s *BillService) GetCalendar(ctx context.Context, req *connect.Request[api.GetCalendarRequest]) (*connect.Response[api.GetCalendarResponse], error) {
	if err := requireRead(ctx); err != nil {
		return nil, err
	}

	today, err := s.state.Today().Time()
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	year, month := req.Msg.Year, time.Month(req.Msg.Month)
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = today.Month()
	}
	if month < time.January || month > time.December {
		return nil, connect.NewError(connect.CodeInvalidArgument, errInvalidMonth)
	}

	cal := calculator.Calendar(s.state.Bills(), year, month)
	return connect.NewResponse(&api.GetCalendarResponse{Calendar: cal}), nil
}
