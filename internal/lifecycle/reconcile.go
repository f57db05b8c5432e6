package lifecycle

import "github.com/jay4webdev/Bill-Tracker/internal/models"

// Mode selects which reconciliation transitions are allowed.
type Mode int

const (
	// ModeLoad only promotes Pending bills to Overdue.
	ModeLoad Mode = iota
	// ModeSave additionally demotes Overdue bills whose due date is no
	// longer in the past back to Pending.
	ModeSave
)

// ReconcileStatus returns the status a bill with the given status and due
// date should have on the given day.
func ReconcileStatus(status models.Status, due, today models.Date, mode Mode) models.Status {
	switch status {
	case models.StatusPending:
		if due.Before(today) {
			return models.StatusOverdue
		}
	case models.StatusOverdue:
		if mode == ModeSave && !due.Before(today) {
			return models.StatusPending
		}
	}
	return status
}

// Reconcile returns b with its status reconciled against today.
func Reconcile(b models.Bill, today models.Date, mode Mode) models.Bill {
	b.Status = ReconcileStatus(b.Status, b.DueDate, today, mode)
	return b
}

// ReconcileAll reconciles every bill in place and returns how many changed.
func ReconcileAll(bills []models.Bill, today models.Date, mode Mode) int {
	changed := 0
	for i := range bills {
		next := ReconcileStatus(bills[i].Status, bills[i].DueDate, today, mode)
		if next != bills[i].Status {
			bills[i].Status = next
			changed++
		}
	}
	return changed
}

// DefaultCurrency fills in USD for bills persisted before currencies were
// tracked. Bills that already carry a currency are left alone.
func DefaultCurrency(b models.Bill) models.Bill {
	if b.Currency == "" {
		b.Currency = models.CurrencyUSD
	}
	return b
}

// NormalizeLoaded applies the load-time upgrade and load-mode
// reconciliation to every bill in place. It returns how many bills had
// their status changed.
func NormalizeLoaded(bills []models.Bill, today models.Date) int {
	for i := range bills {
		bills[i] = DefaultCurrency(bills[i])
	}
	return ReconcileAll(bills, today, ModeLoad)
}
