package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jay4webdev/Bill-Tracker/internal/storage"
	"github.com/jay4webdev/Bill-Tracker/internal/storage/storetest"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "bills.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	bill := storetest.Bill("b1")
	if err := store.SaveBill(ctx, &bill); err != nil {
		t.Fatalf("SaveBill failed: %v", err)
	}
	store.Close()

	// Migrations must be safe to run again on an existing database.
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	snap, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Bills) != 1 {
		t.Fatalf("Expected 1 bill after reopen, got %d", len(snap.Bills))
	}
	storetest.EqualBills(t, snap.Bills[0], bill)
}

func TestSQLiteStore_DeleteCategoryCascades(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	cat := storetest.Category()
	if err := s.SaveCategory(ctx, &cat); err != nil {
		t.Fatalf("SaveCategory failed: %v", err)
	}
	if err := s.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subcategories`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected subcategories to cascade, %d left", n)
	}
}
