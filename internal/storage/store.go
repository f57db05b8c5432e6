// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// ErrNotFound is wrapped by stores when a record to change does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence boundary for the bill tracker.
// This abstraction allows swapping storage backends (SQLite, JSON files, ...)
// without changing the state controller.
//
// Every method is a single logical step: it either fully applies or leaves
// the backend unchanged.
type Store interface {
	// Load reads every collection.
	Load(ctx context.Context) (*models.Snapshot, error)

	// SaveBill creates the bill if its ID is new, otherwise overwrites it.
	SaveBill(ctx context.Context, bill *models.Bill) error

	// PatchBill applies only the non-nil fields of patch.
	PatchBill(ctx context.Context, id string, patch models.BillPatch) error

	// DeleteBill removes a bill.
	DeleteBill(ctx context.Context, id string) error

	// CreateBills inserts a batch atomically and adds any missing company
	// names to the registry in the same step.
	CreateBills(ctx context.Context, bills []models.Bill, companies []string) error

	// SaveCategory creates or overwrites a category and its subcategories.
	SaveCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory removes a category and its subcategories.
	DeleteCategory(ctx context.Context, id string) error

	// SaveUser creates or overwrites a user.
	SaveUser(ctx context.Context, user *models.User) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, id string) error

	// AddCompanies adds names to the registry, ignoring ones already present.
	AddCompanies(ctx context.Context, names []string) error

	// DeleteCompany removes a name from the registry.
	DeleteCompany(ctx context.Context, name string) error

	// Close releases any resources held by the store.
	Close() error
}
