package state

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/lifecycle"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Bills returns a copy of every bill, in collection order. Statuses are
// reconciled against today so a bill that fell due since the last write
// already reads as Overdue.
func (c *Controller) Bills() []models.Bill {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bills := slices.Clone(c.snap.Bills)
	lifecycle.ReconcileAll(bills, c.Today(), lifecycle.ModeLoad)
	return bills
}

// Bill returns a single bill by ID.
func (c *Controller) Bill(id string) (models.Bill, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.billIndex(id)
	if i < 0 {
		return models.Bill{}, notFoundf("bill %s", id)
	}
	return lifecycle.Reconcile(c.snap.Bills[i], c.Today(), lifecycle.ModeLoad), nil
}

// CreateBill validates and adds a new bill. The bill starts Pending unless a
// status is given and is reconciled in save mode. An unknown company name is
// added to the registry in the same write.
func (c *Controller) CreateBill(ctx context.Context, b models.Bill) (models.Bill, error) {
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	b, err := c.prepareBill(b)
	if err != nil {
		return models.Bill{}, err
	}

	c.mu.Lock()
	if b.ID == "" {
		b.ID = c.newID()
	} else if c.billIndex(b.ID) >= 0 {
		c.mu.Unlock()
		return models.Bill{}, fmt.Errorf("%w: bill %s", ErrConflict, b.ID)
	}

	var newCompanies []string
	if !slices.Contains(c.snap.Companies, b.CompanyName) {
		newCompanies = []string{b.CompanyName}
	}
	if err := c.store.CreateBills(ctx, []models.Bill{b}, newCompanies); err != nil {
		c.mu.Unlock()
		return models.Bill{}, syncFailed(err)
	}
	c.snap.Bills = append(c.snap.Bills, b)
	c.snap.Companies = append(c.snap.Companies, newCompanies...)
	c.mu.Unlock()

	c.notify(Event{Kind: EventBillsChanged})
	return b, nil
}

// UpdateBill replaces every field of an existing bill and reconciles it in
// save mode. An empty status keeps the current one.
func (c *Controller) UpdateBill(ctx context.Context, b models.Bill) (models.Bill, error) {
	c.mu.Lock()
	i := c.billIndex(b.ID)
	if i < 0 {
		c.mu.Unlock()
		return models.Bill{}, notFoundf("bill %s", b.ID)
	}
	if b.Status == "" {
		b.Status = c.snap.Bills[i].Status
	}
	b, err := c.prepareBill(b)
	if err != nil {
		c.mu.Unlock()
		return models.Bill{}, err
	}
	if err := c.store.SaveBill(ctx, &b); err != nil {
		c.mu.Unlock()
		return models.Bill{}, syncFailed(err)
	}
	c.snap.Bills[i] = b
	c.mu.Unlock()

	c.notify(Event{Kind: EventBillsChanged})
	return b, nil
}

// PatchBill applies a partial update. The store receives only the changed
// fields, plus the status when reconciliation moved it.
func (c *Controller) PatchBill(ctx context.Context, id string, patch models.BillPatch) (models.Bill, error) {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return models.Bill{}, invalidf("amount must not be negative")
	}
	if patch.DueDate != nil {
		if _, err := models.ParseDate(string(*patch.DueDate)); err != nil {
			return models.Bill{}, invalidf("%v", err)
		}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Bill{}, invalidf("unknown status %q", *patch.Status)
	}

	c.mu.Lock()
	b, changed, err := c.patchLocked(ctx, id, patch)
	c.mu.Unlock()

	if changed {
		c.notify(Event{Kind: EventBillsChanged})
	}
	return b, err
}

// ToggleBillStatus flips a bill between Paid and unpaid. Unpaid resolves to
// Overdue or Pending depending on the due date.
func (c *Controller) ToggleBillStatus(ctx context.Context, id string) (models.Bill, error) {
	c.mu.Lock()
	i := c.billIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Bill{}, notFoundf("bill %s", id)
	}
	next := lifecycle.ToggledStatus(c.snap.Bills[i], c.Today())
	b, changed, err := c.patchLocked(ctx, id, models.BillPatch{Status: &next})
	c.mu.Unlock()

	if changed {
		c.notify(Event{Kind: EventBillsChanged})
	}
	return b, err
}

// patchLocked must be called with c.mu held for writing. It reports whether
// anything was committed.
func (c *Controller) patchLocked(ctx context.Context, id string, patch models.BillPatch) (models.Bill, bool, error) {
	i := c.billIndex(id)
	if i < 0 {
		return models.Bill{}, false, notFoundf("bill %s", id)
	}

	current := c.snap.Bills[i]
	next := lifecycle.Reconcile(patch.Apply(current), c.Today(), lifecycle.ModeSave)
	if next.Status != current.Status || patch.Status != nil {
		status := next.Status
		patch.Status = &status
	}
	if patch.Empty() {
		return next, false, nil
	}

	if err := c.store.PatchBill(ctx, id, patch); err != nil {
		return models.Bill{}, false, syncFailed(err)
	}
	c.snap.Bills[i] = next
	return next, true, nil
}

// DeleteBill removes a bill.
func (c *Controller) DeleteBill(ctx context.Context, id string) error {
	c.mu.Lock()
	i := c.billIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return notFoundf("bill %s", id)
	}
	if err := c.store.DeleteBill(ctx, id); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Bills = slices.Delete(c.snap.Bills, i, i+1)
	c.mu.Unlock()

	c.notify(Event{Kind: EventBillsChanged})
	return nil
}

// ImportBills normalises raw rows and adds them as one atomic batch. Any
// invalid row rejects the whole batch with an *importer.BatchError.
func (c *Controller) ImportBills(ctx context.Context, rows []importer.Row) ([]models.Bill, error) {
	bills, err := importer.Normalize(rows, importer.Options{Today: c.Today(), NewID: c.newID})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	var newCompanies []string
	for _, name := range importer.Companies(bills) {
		if !slices.Contains(c.snap.Companies, name) {
			newCompanies = append(newCompanies, name)
		}
	}
	if err := c.store.CreateBills(ctx, bills, newCompanies); err != nil {
		c.mu.Unlock()
		return nil, syncFailed(err)
	}
	c.snap.Bills = append(c.snap.Bills, bills...)
	c.snap.Companies = append(c.snap.Companies, newCompanies...)
	c.mu.Unlock()

	c.logger.Info("bills imported", "count", len(bills), "new_companies", len(newCompanies))
	c.notify(Event{Kind: EventBillsImported, Imported: len(bills)})
	return slices.Clone(bills), nil
}

// prepareBill trims, validates and defaults a bill from a form submission,
// then reconciles it in save mode.
func (c *Controller) prepareBill(b models.Bill) (models.Bill, error) {
	b.CompanyName = strings.TrimSpace(b.CompanyName)
	b.StaffName = strings.TrimSpace(b.StaffName)
	b.Description = strings.TrimSpace(b.Description)
	b.Category = strings.TrimSpace(b.Category)
	b.Subcategory = strings.TrimSpace(b.Subcategory)

	if b.CompanyName == "" {
		return b, invalidf("company name is required")
	}
	if b.StaffName == "" {
		return b, invalidf("staff name is required")
	}
	if b.Amount.IsNegative() {
		return b, invalidf("amount must not be negative")
	}
	if _, err := models.ParseDate(string(b.DueDate)); err != nil {
		return b, invalidf("due date: %v", err)
	}
	if b.BillDate == "" {
		b.BillDate = c.Today()
	} else if _, err := models.ParseDate(string(b.BillDate)); err != nil {
		return b, invalidf("bill date: %v", err)
	}
	b.Currency = models.Currency(strings.ToUpper(strings.TrimSpace(string(b.Currency))))
	switch b.Currency {
	case "":
		b.Currency = models.CurrencyUSD
	case models.CurrencyUSD, models.CurrencyMVR:
	default:
		return b, invalidf("unsupported currency %q", b.Currency)
	}
	if !b.Status.Valid() {
		return b, invalidf("unknown status %q", b.Status)
	}
	if b.Category == "" {
		b.Category = importer.DefaultCategory
	}

	return lifecycle.Reconcile(b, c.Today(), lifecycle.ModeSave), nil
}

func (c *Controller) billIndex(id string) int {
	return slices.IndexFunc(c.snap.Bills, func(b models.Bill) bool { return b.ID == id })
}
