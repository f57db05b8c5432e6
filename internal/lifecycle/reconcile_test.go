package lifecycle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/testutil"
)

func TestReconcileStatus(t *testing.T) {
	const today = models.Date("2024-06-01")

	tests := []struct {
		name   string
		status models.Status
		due    models.Date
		mode   Mode
		want   models.Status
	}{
		{"pending past due becomes overdue", models.StatusPending, "2024-05-01", ModeLoad, models.StatusOverdue},
		{"pending past due becomes overdue on save", models.StatusPending, "2024-05-31", ModeSave, models.StatusOverdue},
		{"pending due today stays pending", models.StatusPending, today, ModeSave, models.StatusPending},
		{"pending future stays pending", models.StatusPending, "2024-07-01", ModeLoad, models.StatusPending},
		{"overdue moved forward reverts on save", models.StatusOverdue, "2099-01-01", ModeSave, models.StatusPending},
		{"overdue due today reverts on save", models.StatusOverdue, today, ModeSave, models.StatusPending},
		{"overdue moved forward is kept on load", models.StatusOverdue, "2099-01-01", ModeLoad, models.StatusOverdue},
		{"overdue still past stays overdue", models.StatusOverdue, "2024-01-01", ModeSave, models.StatusOverdue},
		{"paid past due is untouched", models.StatusPaid, "2020-01-01", ModeSave, models.StatusPaid},
		{"paid future is untouched", models.StatusPaid, "2099-01-01", ModeLoad, models.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileStatus(tt.status, tt.due, today, tt.mode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	today := models.Date("2024-06-01")
	for _, status := range []models.Status{models.StatusPending, models.StatusOverdue, models.StatusPaid} {
		for _, due := range []models.Date{"2024-05-01", today, "2024-07-01"} {
			b := models.Bill{Status: status, DueDate: due}
			once := Reconcile(b, today, ModeSave)
			twice := Reconcile(once, today, ModeSave)
			assert.Equal(t, once.Status, twice.Status, "status=%s due=%s", status, due)
		}
	}
}

func TestReconcileAllCountsChanges(t *testing.T) {
	bills := []models.Bill{
		{ID: "a", Status: models.StatusPending, DueDate: "2024-05-01"},
		{ID: "b", Status: models.StatusPending, DueDate: "2024-07-01"},
		{ID: "c", Status: models.StatusOverdue, DueDate: "2024-07-01"},
		{ID: "d", Status: models.StatusPaid, DueDate: "2024-05-01"},
	}

	changed := ReconcileAll(bills, "2024-06-01", ModeSave)

	assert.Equal(t, 2, changed)
	assert.Equal(t, models.StatusOverdue, bills[0].Status)
	assert.Equal(t, models.StatusPending, bills[1].Status)
	assert.Equal(t, models.StatusPending, bills[2].Status)
	assert.Equal(t, models.StatusPaid, bills[3].Status)
}

func TestDefaultCurrency(t *testing.T) {
	legacy := models.Bill{ID: "1", Amount: decimal.NewFromInt(10)}

	once := DefaultCurrency(legacy)
	twice := DefaultCurrency(once)
	assert.Equal(t, models.CurrencyUSD, once.Currency)
	assert.Equal(t, models.CurrencyUSD, twice.Currency)

	mvr := models.Bill{ID: "2", Currency: models.CurrencyMVR}
	assert.Equal(t, mvr, DefaultCurrency(mvr))
}

func TestNormalizeLoadedDoesNotRevertOverdue(t *testing.T) {
	bills := []models.Bill{
		{ID: "1", Status: models.StatusOverdue, DueDate: "2099-01-01"},
		{ID: "2", Status: models.StatusPending, DueDate: "2000-01-01"},
	}

	changed := NormalizeLoaded(bills, "2024-06-01")

	require.Equal(t, 1, changed)
	assert.Equal(t, models.StatusOverdue, bills[0].Status)
	assert.Equal(t, models.StatusOverdue, bills[1].Status)
	assert.Equal(t, models.CurrencyUSD, bills[0].Currency)
}

func TestToggledStatus(t *testing.T) {
	today := models.Date("2024-06-01")

	tests := []struct {
		name   string
		status models.Status
		due    models.Date
		want   models.Status
	}{
		{"pending becomes paid", models.StatusPending, "2024-07-01", models.StatusPaid},
		{"overdue becomes paid", models.StatusOverdue, "2024-05-01", models.StatusPaid},
		{"paid past due reverts to overdue", models.StatusPaid, "2024-05-01", models.StatusOverdue},
		{"paid due today reverts to pending", models.StatusPaid, today, models.StatusPending},
		{"paid future reverts to pending", models.StatusPaid, "2024-07-01", models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggledStatus(models.Bill{Status: tt.status, DueDate: tt.due}, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggleTwiceRestoresStatus(t *testing.T) {
	today := models.Date("2024-06-01")
	for _, b := range []models.Bill{
		{Status: models.StatusPaid, DueDate: "2024-05-01"},
		{Status: models.StatusPaid, DueDate: "2024-07-01"},
		{Status: models.StatusPending, DueDate: "2024-07-01"},
		{Status: models.StatusOverdue, DueDate: "2024-05-01"},
	} {
		first := b
		first.Status = ToggledStatus(b, today)
		second := first
		second.Status = ToggledStatus(first, today)
		assert.Equal(t, b.Status, second.Status, "due=%s", b.DueDate)
	}
}

func TestTodayUsesClock(t *testing.T) {
	clock := testutil.NewFixedClock("2024-06-01")
	assert.Equal(t, models.Date("2024-06-01"), Today(clock))
}
