package sqlite

import (
	"context"
	"fmt"
)

// AddCompanies registers names that are not already present.
func (s *SQLiteStore) AddCompanies(ctx context.Context, names []string) error {
	return insertCompanies(ctx, s.db, names)
}

// DeleteCompany removes a company name from the registry.
func (s *SQLiteStore) DeleteCompany(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return requireAffected(res, "company", name)
}

func insertCompanies(ctx context.Context, db execer, names []string) error {
	for _, name := range names {
		if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO companies (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("failed to add company %q: %w", name, err)
		}
	}
	return nil
}

func (s *SQLiteStore) listCompanies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM companies ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return names, nil
}
