package calculator

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// All matches every value in a Filter field.
const All = "ALL"

// SortKey selects the column a bill list is ordered by.
type SortKey string

const (
	SortByDueDate   SortKey = "dueDate"
	SortByAmount    SortKey = "amount"
	SortByStaffName SortKey = "staffName"
)

// Query filters and orders a bill list. Empty or "ALL" filter fields match
// everything.
type Query struct {
	Status   string  `json:"status,omitempty"`
	Company  string  `json:"company,omitempty"`
	Category string  `json:"category,omitempty"`
	SortBy   SortKey `json:"sortBy,omitempty"`
	Desc     bool    `json:"desc,omitempty"`
}

func matches(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// Apply returns the bills matching q in q's order. Amounts are compared raw,
// ignoring currency. Ties keep collection order.
func Apply(bills []models.Bill, q Query) []models.Bill {
	out := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		if matches(q.Status, string(b.Status)) && matches(q.Company, b.CompanyName) && matches(q.Category, b.Category) {
			out = append(out, b)
		}
	}

	var cmp func(a, b models.Bill) int
	switch q.SortBy {
	case SortByAmount:
		cmp = func(a, b models.Bill) int { return a.Amount.Cmp(b.Amount) }
	case SortByStaffName:
		col := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b models.Bill) int { return col.CompareString(a.StaffName, b.StaffName) }
	default:
		cmp = func(a, b models.Bill) int { return strings.Compare(string(a.DueDate), string(b.DueDate)) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if q.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// DistinctCompanies returns the sorted set of company names on bills.
func DistinctCompanies(bills []models.Bill) []string {
	return distinct(bills, func(b models.Bill) string { return b.CompanyName })
}

// DistinctCategories returns the sorted set of categories on bills.
func DistinctCategories(bills []models.Bill) []string {
	return distinct(bills, func(b models.Bill) string { return b.Category })
}

func distinct(bills []models.Bill, key func(models.Bill) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, b := range bills {
		k := key(b)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
