package sqlite

import (
	"context"
	"fmt"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// SaveCategory upserts the category and replaces its subcategory set.
func (s *SQLiteStore) SaveCategory(ctx context.Context, category *models.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO categories (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM subcategories WHERE category_id = ?`, category.ID); err != nil {
		return fmt.Errorf("failed to clear subcategories: %w", err)
	}
	for _, name := range category.Subcategories {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO subcategories (category_id, name) VALUES (?, ?)`,
			category.ID, name)
		if err != nil {
			return fmt.Errorf("failed to insert subcategory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteCategory removes a category; subcategories cascade.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireAffected(res, "category", id)
}

func (s *SQLiteStore) listCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	index := make(map[string]int)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Subcategories = []string{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	rows.Close()

	subRows, err := s.db.QueryContext(ctx, `SELECT category_id, name FROM subcategories ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		var categoryID, name string
		if err := subRows.Scan(&categoryID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		if i, ok := index[categoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, name)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subcategories: %w", err)
	}

	return categories, nil
}
