package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the payment state of a bill.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Currency is the ISO 4217 code a bill is denominated in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyMVR Currency = "MVR"
)

// Currencies lists every currency a bill can carry.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyMVR}
}

// ParseCurrency matches MVR case-insensitively and defaults everything else,
// including the empty string, to USD.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(CurrencyMVR)) {
		return CurrencyMVR
	}
	return CurrencyUSD
}

// Bill represents a bill owed by one of the tracked companies.
// The JSON shape is the wire contract shared by every storage backend.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format for new bills).
	ID string `json:"id"`

	// CompanyName is the company the bill is charged to.
	CompanyName string `json:"companyName"`

	// StaffName is the person responsible for the bill.
	StaffName string `json:"staffName"`

	Description string `json:"description"`

	// Amount is non-negative and denominated in Currency.
	Amount decimal.Decimal `json:"amount"`

	// Currency is empty only for bills written before multi-currency support;
	// the lifecycle package defaults it to USD on load.
	Currency Currency `json:"currency,omitempty"`

	// BillDate and DueDate are ISO dates (YYYY-MM-DD).
	BillDate Date `json:"billDate"`
	DueDate  Date `json:"dueDate"`

	// Status is derived from DueDate and explicit paid toggles.
	Status Status `json:"status"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

// BillPatch carries a partial update. Nil fields are left untouched.
type BillPatch struct {
	Status      *Status          `json:"status,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DueDate     *Date            `json:"dueDate,omitempty"`
}

// Apply returns a copy of b with the non-nil patch fields applied.
func (p BillPatch) Apply(b Bill) Bill {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	return b
}

// Empty reports whether the patch changes nothing.
func (p BillPatch) Empty() bool {
	return p.Status == nil && p.Description == nil && p.Amount == nil && p.DueDate == nil
}
