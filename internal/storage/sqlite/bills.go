package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
)

const billColumns = `id, company_name, staff_name, description, amount, currency,
	bill_date, due_date, status, category, subcategory`

// SaveBill inserts the bill or overwrites every column of an existing one.
func (s *SQLiteStore) SaveBill(ctx context.Context, bill *models.Bill) error {
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			company_name = excluded.company_name,
			staff_name = excluded.staff_name,
			description = excluded.description,
			amount = excluded.amount,
			currency = excluded.currency,
			bill_date = excluded.bill_date,
			due_date = excluded.due_date,
			status = excluded.status,
			category = excluded.category,
			subcategory = excluded.subcategory
	`
	if _, err := s.db.ExecContext(ctx, query, billArgs(bill)...); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

// PatchBill updates only the columns named by the patch.
func (s *SQLiteStore) PatchBill(ctx context.Context, id string, patch models.BillPatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, patch.Amount.String())
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, string(*patch.DueDate))
	}
	if len(sets) == 0 {
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM bills WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return fmt.Errorf("bill %s: %w", id, storage.ErrNotFound)
		}
		return err
	}

	query := `UPDATE bills SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch bill: %w", err)
	}
	return requireAffected(res, "bill", id)
}

// DeleteBill removes a bill by ID.
func (s *SQLiteStore) DeleteBill(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return requireAffected(res, "bill", id)
}

// CreateBills inserts all bills and registers new companies in a single
// transaction. Any failure rolls back the whole batch.
func (s *SQLiteStore) CreateBills(ctx context.Context, bills []models.Bill, companies []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	query := `INSERT INTO bills (` + billColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range bills {
		if _, err := tx.ExecContext(ctx, query, billArgs(&bills[i])...); err != nil {
			return fmt.Errorf("failed to insert bill %s: %w", bills[i].ID, err)
		}
	}

	if err := insertCompanies(ctx, tx, companies); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+billColumns+` FROM bills ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var (
			b        models.Bill
			currency sql.NullString
		)
		if err := rows.Scan(
			&b.ID,
			&b.CompanyName,
			&b.StaffName,
			&b.Description,
			&b.Amount,
			&currency,
			&b.BillDate,
			&b.DueDate,
			&b.Status,
			&b.Category,
			&b.Subcategory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		b.Currency = models.Currency(currency.String)
		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bills: %w", err)
	}
	return bills, nil
}

// billArgs orders the bill fields to match billColumns. An empty currency
// is written as NULL so legacy rows stay distinguishable.
func billArgs(b *models.Bill) []any {
	var currency sql.NullString
	if b.Currency != "" {
		currency = sql.NullString{String: string(b.Currency), Valid: true}
	}
	return []any{
		b.ID,
		b.CompanyName,
		b.StaffName,
		b.Description,
		b.Amount.String(),
		currency,
		string(b.BillDate),
		string(b.DueDate),
		string(b.Status),
		b.Category,
		b.Subcategory,
	}
}
