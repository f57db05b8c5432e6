// Package importer turns spreadsheet rows into bills.
//
// Import is all-or-nothing: every row is validated up front and a single bad
// row rejects the whole batch. Accepted rows start out Pending and are then
// reconciled against today, so a bill imported with a past due date arrives
// Overdue.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jay4webdev/Bill-Tracker/internal/lifecycle"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// DefaultCategory is assigned to rows that leave the category blank.
const DefaultCategory = "Other"

// ErrNoRows is returned when a file has no data rows at all.
var ErrNoRows = errors.New("no valid data found in file")

// ErrUnsupportedFormat is returned by Decode for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Row is one raw data row of an upload, cell values as text.
type Row struct {
	// Line is the 1-based spreadsheet row number; the header is line 1.
	Line int `json:"line,omitempty"`

	CompanyName string `json:"companyName"`
	StaffName   string `json:"staffName"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	BillDate    string `json:"billDate,omitempty"`
	DueDate     string `json:"dueDate"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// RowError describes why a single row was rejected.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// BatchError rejects a whole import. Rows holds every invalid row in file
// order.
type BatchError struct {
	Rows []RowError
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("found errors in %d rows, first error: %s", len(e.Rows), e.Rows[0].Error())
}

// Invalid returns the number of rejected rows.
func (e *BatchError) Invalid() int {
	return len(e.Rows)
}

// First returns the first rejected row.
func (e *BatchError) First() RowError {
	return e.Rows[0]
}

// Options controls normalisation.
type Options struct {
	// Today is used for reconciliation and as the default bill date.
	Today models.Date

	// NewID generates bill IDs. Defaults to random UUIDs.
	NewID func() string
}

// Normalize validates every row and converts the batch into bills. If any
// row is invalid it returns a *BatchError and no bills.
func Normalize(rows []Row, opts Options) ([]models.Bill, error) {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	var (
		bills   []models.Bill
		invalid []RowError
	)
	for i, row := range rows {
		if row.Line == 0 {
			row.Line = i + 2
		}
		bill, err := normalizeRow(row, opts.Today)
		if err != nil {
			invalid = append(invalid, RowError{Line: row.Line, Reason: err.Error()})
			continue
		}
		bill.ID = opts.NewID()
		bills = append(bills, bill)
	}

	if len(invalid) > 0 {
		return nil, &BatchError{Rows: invalid}
	}
	if len(bills) == 0 {
		return nil, ErrNoRows
	}
	return bills, nil
}

func normalizeRow(row Row, today models.Date) (models.Bill, error) {
	company := strings.TrimSpace(row.CompanyName)
	staff := strings.TrimSpace(row.StaffName)
	rawAmount := strings.TrimSpace(row.Amount)
	rawDue := strings.TrimSpace(row.DueDate)

	if company == "" || staff == "" || rawAmount == "" || rawDue == "" {
		return models.Bill{}, errors.New("missing required fields (Company, Staff, Amount, or Due Date)")
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return models.Bill{}, err
	}

	due, err := ParseDateCell(rawDue)
	if err != nil {
		return models.Bill{}, fmt.Errorf("due date: %w", err)
	}

	billDate := today
	if raw := strings.TrimSpace(row.BillDate); raw != "" {
		billDate, err = ParseDateCell(raw)
		if err != nil {
			return models.Bill{}, fmt.Errorf("bill date: %w", err)
		}
	}

	category := strings.TrimSpace(row.Category)
	if category == "" {
		category = DefaultCategory
	}

	bill := models.Bill{
		CompanyName: company,
		StaffName:   staff,
		Description: strings.TrimSpace(row.Description),
		Amount:      amount,
		Currency:    models.ParseCurrency(row.Currency),
		BillDate:    billDate,
		DueDate:     due,
		Status:      models.StatusPending,
		Category:    category,
		Subcategory: strings.TrimSpace(row.Subcategory),
	}
	return lifecycle.Reconcile(bill, today, lifecycle.ModeSave), nil
}

// ParseAmount parses a non-negative decimal amount. Thousands separators
// are ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not a number", s)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %q must not be negative", s)
	}
	return amount, nil
}

// Companies returns the distinct company names of bills in first-seen
// order.
func Companies(bills []models.Bill) []string {
	seen := make(map[string]bool, len(bills))
	var names []string
	for _, b := range bills {
		if !seen[b.CompanyName] {
			seen[b.CompanyName] = true
			names = append(names, b.CompanyName)
		}
	}
	return names
}
