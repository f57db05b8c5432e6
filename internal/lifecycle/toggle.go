package lifecycle

import "github.com/jay4webdev/Bill-Tracker/internal/models"

// ToggledStatus returns the status a bill moves to when a user flips its
// paid flag. A paid bill goes back to Overdue or Pending depending on its
// due date; anything else becomes Paid.
func ToggledStatus(b models.Bill, today models.Date) models.Status {
	if b.Status == models.StatusPaid {
		if b.DueDate.Before(today) {
			return models.StatusOverdue
		}
		return models.StatusPending
	}
	return models.StatusPaid
}
