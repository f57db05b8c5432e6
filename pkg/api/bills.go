package api

import (
	"github.com/jay4webdev/Bill-Tracker/internal/calculator"
	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// ListBillsRequest filters and sorts the bill list. Empty or "ALL" filter
// values match everything.
type ListBillsRequest struct {
	Status   string             `json:"status,omitempty"`
	Company  string             `json:"company,omitempty"`
	Category string             `json:"category,omitempty"`
	SortBy   calculator.SortKey `json:"sortBy,omitempty"`
	Desc     bool               `json:"desc,omitempty"`
}

// ListBillsResponse also carries the distinct companies and categories of
// the whole collection for filter menus.
type ListBillsResponse struct {
	Bills      []models.Bill `json:"bills"`
	Companies  []string      `json:"companies"`
	Categories []string      `json:"categories"`
}

type GetBillRequest struct {
	ID string `json:"id"`
}

type GetBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type CreateBillRequest struct {
	Bill models.Bill `json:"bill"`
}

type CreateBillResponse struct {
	Bill models.Bill `json:"bill"`
}

// UpdateBillRequest replaces every field of an existing bill. An empty
// status keeps the current one.
type UpdateBillRequest struct {
	Bill models.Bill `json:"bill"`
}

type UpdateBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type DeleteBillRequest struct {
	ID string `json:"id"`
}

type DeleteBillResponse struct{}

type ToggleBillStatusRequest struct {
	ID string `json:"id"`
}

type ToggleBillStatusResponse struct {
	Bill models.Bill `json:"bill"`
}

// ImportBillsRequest carries either a spreadsheet upload (File plus
// Filename, which selects the format by extension) or pre-parsed Rows.
type ImportBillsRequest struct {
	Filename string         `json:"filename,omitempty"`
	File     []byte         `json:"file,omitempty"`
	Rows     []importer.Row `json:"rows,omitempty"`
}

type ImportBillsResponse struct {
	Imported int           `json:"imported"`
	Bills    []models.Bill `json:"bills"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Summary calculator.Summary `json:"summary"`
}

// GetCalendarRequest selects a month. Zero values mean the current month.
type GetCalendarRequest struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

type GetCalendarResponse struct {
	Calendar calculator.CalendarMonth `json:"calendar"`
}
