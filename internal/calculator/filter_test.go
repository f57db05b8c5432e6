package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

func ids(bills []models.Bill) []string {
	out := make([]string, len(bills))
	for i, b := range bills {
		out[i] = b.ID
	}
	return out
}

func sampleBills() []models.Bill {
	bills := []models.Bill{
		bill("1", "Acme Corp", "1250", models.CurrencyUSD, "2024-05-15", models.StatusPending),
		bill("2", "Beta Ltd", "4500", models.CurrencyUSD, "2024-05-05", models.StatusPaid),
		bill("3", "Acme Corp", "800", models.CurrencyUSD, "2024-05-24", models.StatusPending),
		bill("4", "Gamma Inc", "3200.50", models.CurrencyMVR, "2024-05-20", models.StatusOverdue),
	}
	bills[0].StaffName = "mike"
	bills[1].StaffName = "Anna"
	bills[2].StaffName = "Zoe"
	bills[3].StaffName = "bob"
	bills[3].Category = "Marketing"
	return bills
}

func TestApplyFilters(t *testing.T) {
	bills := sampleBills()

	assert.Equal(t, []string{"2", "1", "4", "3"}, ids(Apply(bills, Query{})))
	assert.Equal(t, []string{"1", "3"}, ids(Apply(bills, Query{Company: "Acme Corp"})))
	assert.Equal(t, []string{"1", "3"}, ids(Apply(bills, Query{Status: "Pending", Company: All})))
	assert.Equal(t, []string{"4"}, ids(Apply(bills, Query{Category: "Marketing"})))
	assert.Empty(t, Apply(bills, Query{Company: "Nobody"}))
}

func TestApplySorts(t *testing.T) {
	bills := sampleBills()

	assert.Equal(t, []string{"3", "4", "1", "2"}, ids(Apply(bills, Query{SortBy: SortByDueDate, Desc: true})))
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(Apply(bills, Query{SortBy: SortByAmount})))
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(Apply(bills, Query{SortBy: SortByStaffName})))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	bills := sampleBills()
	Apply(bills, Query{SortBy: SortByAmount, Desc: true})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(bills))
}

func TestDistinct(t *testing.T) {
	bills := sampleBills()
	assert.Equal(t, []string{"Acme Corp", "Beta Ltd", "Gamma Inc"}, DistinctCompanies(bills))
	assert.Equal(t, []string{"Marketing", "Other"}, DistinctCategories(bills))
}

func TestCalendar(t *testing.T) {
	bills := sampleBills()
	bills = append(bills, bill("5", "X", "1", models.CurrencyUSD, "2024-06-15", models.StatusPending))

	cal := Calendar(bills, 2024, time.May)

	require.Len(t, cal.Days, 31)
	assert.Equal(t, time.Wednesday, cal.FirstWeekday)
	assert.Equal(t, models.Date("2024-05-01"), cal.Days[0].Date)
	assert.Equal(t, []string{"1"}, ids(cal.Days[14].Bills))
	assert.Equal(t, []string{"2"}, ids(cal.Days[4].Bills))
	assert.Empty(t, cal.Days[1].Bills)

	total := 0
	for _, d := range cal.Days {
		total += len(d.Bills)
	}
	assert.Equal(t, 4, total)
}

func TestCalendarLeapFebruary(t *testing.T) {
	cal := Calendar(nil, 2024, time.February)
	assert.Len(t, cal.Days, 29)
	assert.Equal(t, time.Thursday, cal.FirstWeekday)
}
