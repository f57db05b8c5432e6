package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay4webdev/Bill-Tracker/internal/importer"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
	"github.com/jay4webdev/Bill-Tracker/internal/storage/filestore"
	"github.com/jay4webdev/Bill-Tracker/internal/testutil"
)

// flakyStore fails every write while broken is set.
type flakyStore struct {
	storage.Store
	broken bool
}

var errDisk = errors.New("disk unavailable")

func (s *flakyStore) SaveBill(ctx context.Context, b *models.Bill) error {
	if s.broken {
		return errDisk
	}
	return s.Store.SaveBill(ctx, b)
}

func (s *flakyStore) PatchBill(ctx context.Context, id string, p models.BillPatch) error {
	if s.broken {
		return errDisk
	}
	return s.Store.PatchBill(ctx, id, p)
}

func (s *flakyStore) CreateBills(ctx context.Context, bills []models.Bill, companies []string) error {
	if s.broken {
		return errDisk
	}
	return s.Store.CreateBills(ctx, bills, companies)
}

func (s *flakyStore) DeleteBill(ctx context.Context, id string) error {
	if s.broken {
		return errDisk
	}
	return s.Store.DeleteBill(ctx, id)
}

type fixture struct {
	ctrl   *Controller
	store  *flakyStore
	clock  *testutil.FixedClock
	events []Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fs, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		store: &flakyStore{Store: fs},
		clock: testutil.NewFixedClock("2024-05-15"),
	}
	seq := 0
	f.ctrl = New(f.store,
		WithClock(f.clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
		WithObserver(func(ev Event) { f.events = append(f.events, ev) }),
	)
	require.NoError(t, f.ctrl.Refresh(context.Background()))
	f.events = nil
	return f
}

func formBill(due models.Date) models.Bill {
	return models.Bill{
		CompanyName: "Acme Corp",
		StaffName:   "John",
		Description: "Internet",
		Amount:      decimal.RequireFromString("100"),
		Currency:    models.CurrencyUSD,
		BillDate:    "2024-05-01",
		DueDate:     due,
		Category:    "Utilities",
	}
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("future due date stays pending", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.ctrl.CreateBill(ctx, formBill("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, "id-1", b.ID)
		assert.Equal(t, models.StatusPending, b.Status)
		assert.Equal(t, []string{"Acme Corp"}, f.ctrl.Companies())
		require.Len(t, f.events, 1)
		assert.Equal(t, EventBillsChanged, f.events[0].Kind)
	})

	t.Run("past due date becomes overdue", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.ctrl.CreateBill(ctx, formBill("2024-05-14"))
		require.NoError(t, err)
		assert.Equal(t, models.StatusOverdue, b.Status)
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.ctrl.CreateBill(ctx, formBill("2024-05-15"))
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, b.Status)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		cases := map[string]func(*models.Bill){
			"missing company":  func(b *models.Bill) { b.CompanyName = "  " },
			"missing staff":    func(b *models.Bill) { b.StaffName = "" },
			"negative amount":  func(b *models.Bill) { b.Amount = decimal.NewFromInt(-1) },
			"bad due date":     func(b *models.Bill) { b.DueDate = "15/05/2024" },
			"unknown currency": func(b *models.Bill) { b.Currency = "EUR" },
		}
		for name, mutate := range cases {
			b := formBill("2024-06-01")
			mutate(&b)
			_, err := f.ctrl.CreateBill(ctx, b)
			assert.ErrorIs(t, err, ErrInvalid, name)
		}
		assert.Empty(t, f.ctrl.Bills())
	})

	t.Run("defaults", func(t *testing.T) {
		f := newFixture(t)
		in := formBill("2024-06-01")
		in.Currency = ""
		in.BillDate = ""
		in.Category = ""
		b, err := f.ctrl.CreateBill(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, models.CurrencyUSD, b.Currency)
		assert.Equal(t, models.Date("2024-05-15"), b.BillDate)
		assert.Equal(t, "Other", b.Category)
	})

	t.Run("currency is matched case-insensitively", func(t *testing.T) {
		f := newFixture(t)
		in := formBill("2024-06-01")
		in.Currency = " mvr "
		b, err := f.ctrl.CreateBill(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, models.CurrencyMVR, b.Currency)
	})
}

func TestToggleBillStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	past, err := f.ctrl.CreateBill(ctx, formBill("2024-05-01"))
	require.NoError(t, err)
	future, err := f.ctrl.CreateBill(ctx, formBill("2024-06-01"))
	require.NoError(t, err)

	b, err := f.ctrl.ToggleBillStatus(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, b.Status)

	b, err = f.ctrl.ToggleBillStatus(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, b.Status)

	_, err = f.ctrl.ToggleBillStatus(ctx, future.ID)
	require.NoError(t, err)
	b, err = f.ctrl.ToggleBillStatus(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)

	_, err = f.ctrl.ToggleBillStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// The store saw only status patches and agrees with memory.
	require.NoError(t, f.ctrl.Refresh(ctx))
	got, err := f.ctrl.Bill(past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, got.Status)
}

func TestPatchBill_ReconcilesInSaveMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.ctrl.CreateBill(ctx, formBill("2024-05-01"))
	require.NoError(t, err)
	require.Equal(t, models.StatusOverdue, b.Status)

	due := models.Date("2024-07-01")
	b, err = f.ctrl.PatchBill(ctx, b.ID, models.BillPatch{DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)

	require.NoError(t, f.ctrl.Refresh(ctx))
	got, _ := f.ctrl.Bill(b.ID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, due, got.DueDate)
}

func TestUpdateBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.ctrl.CreateBill(ctx, formBill("2024-06-01"))
	require.NoError(t, err)

	b.StaffName = "Jane"
	b.Status = ""
	updated, err := f.ctrl.UpdateBill(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.StaffName)
	assert.Equal(t, models.StatusPending, updated.Status)

	b.ID = "missing"
	_, err = f.ctrl.UpdateBill(ctx, b)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreFailureLeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.ctrl.CreateBill(ctx, formBill("2024-06-01"))
	require.NoError(t, err)
	before := f.ctrl.Bills()
	f.events = nil

	f.store.broken = true

	_, err = f.ctrl.ToggleBillStatus(ctx, b.ID)
	assert.ErrorIs(t, err, ErrSync)
	assert.ErrorIs(t, err, errDisk)

	_, err = f.ctrl.CreateBill(ctx, formBill("2024-06-02"))
	assert.ErrorIs(t, err, ErrSync)

	err = f.ctrl.DeleteBill(ctx, b.ID)
	assert.ErrorIs(t, err, ErrSync)

	_, err = f.ctrl.ImportBills(ctx, []importer.Row{{CompanyName: "NewCo", StaffName: "A", Amount: "1", DueDate: "2024-06-01"}})
	assert.ErrorIs(t, err, ErrSync)

	assert.Equal(t, before, f.ctrl.Bills())
	assert.Equal(t, []string{"Acme Corp"}, f.ctrl.Companies())
	assert.Empty(t, f.events)
}

func TestImportBills(t *testing.T) {
	ctx := context.Background()

	t.Run("all rows valid", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ctrl.AddCompany(ctx, "Acme Corp"))
		f.events = nil

		rows := []importer.Row{
			{CompanyName: "Acme Corp", StaffName: "John", Amount: "1,250.50", Currency: "mvr", DueDate: "2024-05-01"},
			{CompanyName: "NewCo", StaffName: "Jane", Amount: "10", DueDate: "2024-06-01", Category: "Legal"},
		}
		bills, err := f.ctrl.ImportBills(ctx, rows)
		require.NoError(t, err)
		require.Len(t, bills, 2)

		assert.Equal(t, models.StatusOverdue, bills[0].Status)
		assert.Equal(t, models.CurrencyMVR, bills[0].Currency)
		assert.Equal(t, "Other", bills[0].Category)
		assert.Equal(t, models.StatusPending, bills[1].Status)
		assert.Equal(t, []string{"Acme Corp", "NewCo"}, f.ctrl.Companies())

		require.Len(t, f.events, 1)
		assert.Equal(t, EventBillsImported, f.events[0].Kind)
		assert.Equal(t, 2, f.events[0].Imported)
	})

	t.Run("one bad row rejects the batch", func(t *testing.T) {
		f := newFixture(t)
		rows := []importer.Row{
			{CompanyName: "Acme Corp", StaffName: "John", Amount: "10", DueDate: "2024-06-01"},
			{CompanyName: "Acme Corp", StaffName: "", Amount: "10", DueDate: "2024-06-01"},
			{CompanyName: "Acme Corp", StaffName: "Jim", Amount: "ten", DueDate: "2024-06-01"},
		}
		_, err := f.ctrl.ImportBills(ctx, rows)

		var batch *importer.BatchError
		require.ErrorAs(t, err, &batch)
		assert.Equal(t, 2, batch.Invalid())
		assert.Equal(t, 3, batch.First().Line)
		assert.Empty(t, f.ctrl.Bills())
		assert.Empty(t, f.ctrl.Companies())
	})

	t.Run("no rows", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ctrl.ImportBills(ctx, nil)
		assert.ErrorIs(t, err, importer.ErrNoRows)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	legacy := formBill("2024-05-10")
	legacy.ID = "legacy"
	legacy.Currency = ""
	legacy.Status = models.StatusPending
	require.NoError(t, f.store.SaveBill(ctx, &legacy))

	stale := formBill("2024-06-01")
	stale.ID = "stale"
	stale.Status = models.StatusOverdue
	require.NoError(t, f.store.SaveBill(ctx, &stale))

	require.NoError(t, f.ctrl.Refresh(ctx))
	bills := f.ctrl.Bills()
	require.Len(t, bills, 2)

	assert.Equal(t, models.CurrencyUSD, bills[0].Currency)
	assert.Equal(t, models.StatusOverdue, bills[0].Status)

	// Load never demotes Overdue back to Pending.
	assert.Equal(t, models.StatusOverdue, bills[1].Status)

	require.Len(t, f.events, 1)
	assert.Equal(t, EventRefreshed, f.events[0].Kind)
}

func TestBills_ReflectDayRollover(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.ctrl.CreateBill(ctx, formBill("2024-05-15"))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, b.Status)

	f.clock.Advance(24 * time.Hour)
	got, err := f.ctrl.Bill(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, got.Status)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cat, err := f.ctrl.CreateCategory(ctx, "Travel", []string{"Flights", "Flights", " Hotels "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Flights", "Hotels"}, cat.Subcategories)

	_, err = f.ctrl.CreateCategory(ctx, "travel", nil)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = f.ctrl.CreateCategory(ctx, "", nil)
	assert.ErrorIs(t, err, ErrInvalid)

	cat, err = f.ctrl.AddSubcategory(ctx, cat.ID, "Taxis")
	require.NoError(t, err)
	assert.Equal(t, []string{"Flights", "Hotels", "Taxis"}, cat.Subcategories)

	cat, err = f.ctrl.AddSubcategory(ctx, cat.ID, "Taxis")
	require.NoError(t, err)
	assert.Len(t, cat.Subcategories, 3)

	cat, err = f.ctrl.RemoveSubcategory(ctx, cat.ID, "Flights")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hotels", "Taxis"}, cat.Subcategories)

	require.NoError(t, f.ctrl.Refresh(ctx))
	require.Len(t, f.ctrl.Categories(), 1)
	assert.ElementsMatch(t, []string{"Hotels", "Taxis"}, f.ctrl.Categories()[0].Subcategories)

	require.NoError(t, f.ctrl.DeleteCategory(ctx, cat.ID))
	assert.Empty(t, f.ctrl.Categories())
	assert.ErrorIs(t, f.ctrl.DeleteCategory(ctx, cat.ID), ErrNotFound)
	_, err = f.ctrl.AddSubcategory(ctx, cat.ID, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin := models.User{Username: "admin", FullName: "Admin", PasswordHash: "h", Role: models.RoleAdmin}
	require.NoError(t, f.ctrl.CreateUser(ctx, &admin))
	assert.Equal(t, "id-1", admin.ID)

	dup := models.User{Username: "admin", FullName: "Other", PasswordHash: "h", Role: models.RoleViewer}
	assert.ErrorIs(t, f.ctrl.CreateUser(ctx, &dup), ErrConflict)

	viewer := models.User{Username: "viewer", FullName: "Viewer", PasswordHash: "h", Role: models.RoleViewer}
	require.NoError(t, f.ctrl.CreateUser(ctx, &viewer))

	got, err := f.ctrl.GetUserByUsername(ctx, "viewer")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, viewer.ID, got.ID)

	missing, err := f.ctrl.GetUserByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	viewer.Role = models.RoleEditor
	viewer.PasswordHash = ""
	updated, err := f.ctrl.UpdateUser(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, updated.Role)
	assert.Equal(t, "h", updated.PasswordHash)

	viewer.Username = "admin"
	_, err = f.ctrl.UpdateUser(ctx, viewer)
	assert.ErrorIs(t, err, ErrConflict)

	assert.ErrorIs(t, f.ctrl.DeleteUser(ctx, admin.ID, admin.ID), ErrSelfDelete)
	require.NoError(t, f.ctrl.DeleteUser(ctx, admin.ID, viewer.ID))
	assert.ErrorIs(t, f.ctrl.DeleteUser(ctx, admin.ID, viewer.ID), ErrNotFound)
	assert.Len(t, f.ctrl.Users(), 1)
}

func TestCompanies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.ctrl.AddCompany(ctx, "Beta Ltd"))
	require.NoError(t, f.ctrl.AddCompany(ctx, "Beta Ltd"))
	assert.ErrorIs(t, f.ctrl.AddCompany(ctx, " "), ErrInvalid)
	assert.Equal(t, []string{"Beta Ltd"}, f.ctrl.Companies())

	require.NoError(t, f.ctrl.DeleteCompany(ctx, "Beta Ltd"))
	assert.ErrorIs(t, f.ctrl.DeleteCompany(ctx, "Beta Ltd"), ErrNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin := models.User{Username: "admin", FullName: "System Administrator", PasswordHash: "h", Role: models.RoleAdmin}
	seeded, err := f.ctrl.Seed(ctx, admin)
	require.NoError(t, err)
	assert.True(t, seeded)

	require.NoError(t, f.ctrl.Refresh(ctx))
	assert.Len(t, f.ctrl.Categories(), 8)
	assert.Equal(t, DefaultCompanies(), f.ctrl.Companies())
	assert.Len(t, f.ctrl.Users(), 1)
	assert.Empty(t, f.ctrl.Bills())

	seeded, err = f.ctrl.Seed(ctx, admin)
	require.NoError(t, err)
	assert.False(t, seeded)
}
