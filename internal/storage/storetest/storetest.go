// Package storetest holds behaviour checks shared by every storage.Store
// implementation.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
)

// Factory opens a fresh, empty store. Implementations register cleanup on t.
type Factory func(t *testing.T) storage.Store

// Bill returns a fully populated bill for use in tests.
func Bill(id string) models.Bill {
	return models.Bill{
		ID:          id,
		CompanyName: "Acme Corp",
		StaffName:   "John",
		Description: "Internet",
		Amount:      decimal.RequireFromString("1250.50"),
		Currency:    models.CurrencyMVR,
		BillDate:    "2024-05-01",
		DueDate:     "2024-05-31",
		Status:      models.StatusPending,
		Category:    "Utilities",
		Subcategory: "Internet",
	}
}

// Category returns a category with two subcategories.
func Category() models.Category {
	return models.Category{ID: "c1", Name: "Utilities", Subcategories: []string{"Electricity", "Water"}}
}

// EqualBills reports a test error for every field that differs. Amounts are
// compared numerically since backends may normalise trailing zeros.
func EqualBills(t *testing.T, got, want models.Bill) {
	t.Helper()
	if !got.Amount.Equal(want.Amount) {
		t.Errorf("Amount mismatch: got %s, want %s", got.Amount, want.Amount)
	}
	got.Amount, want.Amount = decimal.Zero, decimal.Zero
	if got != want {
		t.Errorf("Bill mismatch:\n got  %+v\n want %+v", got, want)
	}
}

// Run exercises the full Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("Load on empty store", func(t *testing.T) {
		store := newStore(t)
		snap, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(snap.Bills) != 0 || len(snap.Categories) != 0 || len(snap.Users) != 0 || len(snap.Companies) != 0 {
			t.Errorf("Expected empty snapshot, got %+v", snap)
		}
	})

	t.Run("SaveBill round-trips every field", func(t *testing.T) {
		store := newStore(t)
		want := Bill("b1")
		if err := store.SaveBill(ctx, &want); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}

		snap, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(snap.Bills) != 1 {
			t.Fatalf("Expected 1 bill, got %d", len(snap.Bills))
		}
		EqualBills(t, snap.Bills[0], want)
	})

	t.Run("SaveBill overwrites existing bill in place", func(t *testing.T) {
		store := newStore(t)
		first, second := Bill("b1"), Bill("b2")
		for _, b := range []*models.Bill{&first, &second} {
			if err := store.SaveBill(ctx, b); err != nil {
				t.Fatalf("SaveBill failed: %v", err)
			}
		}

		first.StaffName = "Jane"
		first.Status = models.StatusPaid
		if err := store.SaveBill(ctx, &first); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}

		snap, _ := store.Load(ctx)
		if len(snap.Bills) != 2 {
			t.Fatalf("Expected 2 bills, got %d", len(snap.Bills))
		}
		EqualBills(t, snap.Bills[0], first)
		EqualBills(t, snap.Bills[1], second)
	})

	t.Run("Legacy bill without currency loads empty", func(t *testing.T) {
		store := newStore(t)
		legacy := Bill("legacy")
		legacy.Currency = ""
		if err := store.SaveBill(ctx, &legacy); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}
		snap, _ := store.Load(ctx)
		if snap.Bills[0].Currency != "" {
			t.Errorf("Expected empty currency, got %q", snap.Bills[0].Currency)
		}
	})

	t.Run("PatchBill changes only named fields", func(t *testing.T) {
		store := newStore(t)
		bill := Bill("b1")
		if err := store.SaveBill(ctx, &bill); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}

		paid := models.StatusPaid
		if err := store.PatchBill(ctx, "b1", models.BillPatch{Status: &paid}); err != nil {
			t.Fatalf("PatchBill failed: %v", err)
		}

		snap, _ := store.Load(ctx)
		want := bill
		want.Status = models.StatusPaid
		EqualBills(t, snap.Bills[0], want)
	})

	t.Run("PatchBill on missing bill", func(t *testing.T) {
		store := newStore(t)
		paid := models.StatusPaid
		err := store.PatchBill(ctx, "missing", models.BillPatch{Status: &paid})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteBill", func(t *testing.T) {
		store := newStore(t)
		bill := Bill("b1")
		if err := store.SaveBill(ctx, &bill); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}
		if err := store.DeleteBill(ctx, "b1"); err != nil {
			t.Fatalf("DeleteBill failed: %v", err)
		}
		snap, _ := store.Load(ctx)
		if len(snap.Bills) != 0 {
			t.Errorf("Expected no bills, got %d", len(snap.Bills))
		}
		if err := store.DeleteBill(ctx, "b1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("CreateBills adds bills and companies together", func(t *testing.T) {
		store := newStore(t)
		if err := store.AddCompanies(ctx, []string{"Acme Corp"}); err != nil {
			t.Fatalf("AddCompanies failed: %v", err)
		}

		a, b := Bill("b1"), Bill("b2")
		b.CompanyName = "NewCo"
		if err := store.CreateBills(ctx, []models.Bill{a, b}, []string{"Acme Corp", "NewCo"}); err != nil {
			t.Fatalf("CreateBills failed: %v", err)
		}

		snap, _ := store.Load(ctx)
		if len(snap.Bills) != 2 {
			t.Fatalf("Expected 2 bills, got %d", len(snap.Bills))
		}
		if len(snap.Companies) != 2 || snap.Companies[0] != "Acme Corp" || snap.Companies[1] != "NewCo" {
			t.Errorf("Unexpected companies: %v", snap.Companies)
		}
	})

	t.Run("CreateBills is all-or-nothing", func(t *testing.T) {
		store := newStore(t)
		existing := Bill("dup")
		if err := store.SaveBill(ctx, &existing); err != nil {
			t.Fatalf("SaveBill failed: %v", err)
		}

		err := store.CreateBills(ctx, []models.Bill{Bill("fresh"), Bill("dup")}, []string{"NewCo"})
		if err == nil {
			t.Fatal("Expected CreateBills to fail on duplicate ID")
		}

		snap, _ := store.Load(ctx)
		if len(snap.Bills) != 1 {
			t.Errorf("Expected batch to be rolled back, got %d bills", len(snap.Bills))
		}
		if len(snap.Companies) != 0 {
			t.Errorf("Expected no companies after rollback, got %v", snap.Companies)
		}
	})

	t.Run("Categories and subcategories", func(t *testing.T) {
		store := newStore(t)
		cat := Category()
		if err := store.SaveCategory(ctx, &cat); err != nil {
			t.Fatalf("SaveCategory failed: %v", err)
		}

		cat.Subcategories = []string{"Water"}
		if err := store.SaveCategory(ctx, &cat); err != nil {
			t.Fatalf("SaveCategory failed: %v", err)
		}

		snap, _ := store.Load(ctx)
		if len(snap.Categories) != 1 {
			t.Fatalf("Expected 1 category, got %d", len(snap.Categories))
		}
		got := snap.Categories[0]
		if got.Name != "Utilities" || len(got.Subcategories) != 1 || got.Subcategories[0] != "Water" {
			t.Errorf("Unexpected category: %+v", got)
		}

		if err := store.DeleteCategory(ctx, "c1"); err != nil {
			t.Fatalf("DeleteCategory failed: %v", err)
		}
		snap, _ = store.Load(ctx)
		if len(snap.Categories) != 0 {
			t.Errorf("Expected category to be deleted")
		}
		if err := store.DeleteCategory(ctx, "c1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Users", func(t *testing.T) {
		store := newStore(t)
		user := models.User{
			ID:           "u1",
			Username:     "admin",
			PasswordHash: "hash",
			FullName:     "System Admin",
			Role:         models.RoleAdmin,
			CreatedAt:    1700000000,
		}
		if err := store.SaveUser(ctx, &user); err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}

		user.Role = models.RoleViewer
		if err := store.SaveUser(ctx, &user); err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}

		snap, _ := store.Load(ctx)
		if len(snap.Users) != 1 || snap.Users[0] != user {
			t.Errorf("Unexpected users: %+v", snap.Users)
		}

		if err := store.DeleteUser(ctx, "u1"); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}
		if err := store.DeleteUser(ctx, "u1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Companies", func(t *testing.T) {
		store := newStore(t)
		if err := store.AddCompanies(ctx, []string{"Beta Ltd", "Acme Corp", "Beta Ltd"}); err != nil {
			t.Fatalf("AddCompanies failed: %v", err)
		}
		snap, _ := store.Load(ctx)
		if len(snap.Companies) != 2 || snap.Companies[0] != "Beta Ltd" {
			t.Errorf("Unexpected companies: %v", snap.Companies)
		}

		if err := store.DeleteCompany(ctx, "Beta Ltd"); err != nil {
			t.Fatalf("DeleteCompany failed: %v", err)
		}
		if err := store.DeleteCompany(ctx, "Beta Ltd"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
