// Package calculator derives read-only views over the bill collection:
// dashboard totals, filtered and sorted lists, and calendar months.
//
// Everything here is a pure function of its inputs and is recomputed on
// every request.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// UpcomingLimit caps the number of upcoming bills on the dashboard.
const UpcomingLimit = 5

// CompanyTotal is the converted amount billed to one company.
type CompanyTotal struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary holds the dashboard figures. All amounts are converted to the
// base currency of the Rates used and are estimates.
type Summary struct {
	// Label marks the converted figures as estimates, e.g. "USD Est.".
	Label string `json:"label"`

	Outstanding   decimal.Decimal `json:"outstanding"`
	Paid          decimal.Decimal `json:"paid"`
	OverdueCount  int             `json:"overdueCount"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
	PendingCount  int             `json:"pendingCount"`

	// Upcoming holds the Pending bills with the nearest due dates.
	Upcoming []models.Bill `json:"upcoming"`

	// ByCompany is in order of each company's first bill.
	ByCompany []CompanyTotal `json:"byCompany"`
}

// Summarize computes the dashboard over bills.
func Summarize(bills []models.Bill, rates Rates) Summary {
	s := Summary{
		Label:         rates.Label(),
		Outstanding:   decimal.Zero,
		Paid:          decimal.Zero,
		OverdueAmount: decimal.Zero,
		Upcoming:      []models.Bill{},
		ByCompany:     []CompanyTotal{},
	}

	companyIdx := make(map[string]int)
	var pending []models.Bill

	for _, b := range bills {
		amount := rates.Convert(b.Amount, b.Currency)

		switch b.Status {
		case models.StatusPending:
			s.Outstanding = s.Outstanding.Add(amount)
			s.PendingCount++
			pending = append(pending, b)
		case models.StatusOverdue:
			s.Outstanding = s.Outstanding.Add(amount)
			s.OverdueCount++
			s.OverdueAmount = s.OverdueAmount.Add(amount)
		case models.StatusPaid:
			s.Paid = s.Paid.Add(amount)
		}

		idx, ok := companyIdx[b.CompanyName]
		if !ok {
			idx = len(s.ByCompany)
			companyIdx[b.CompanyName] = idx
			s.ByCompany = append(s.ByCompany, CompanyTotal{Name: b.CompanyName, Amount: decimal.Zero})
		}
		s.ByCompany[idx].Amount = s.ByCompany[idx].Amount.Add(amount)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})
	if len(pending) > UpcomingLimit {
		pending = pending[:UpcomingLimit]
	}
	s.Upcoming = append(s.Upcoming, pending...)

	return s
}
