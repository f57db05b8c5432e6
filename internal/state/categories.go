package state

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Categories returns a copy of every category.
func (c *Controller) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Clone().Categories
}

// CreateCategory adds a category. Names are unique, ignoring case.
// Duplicate subcategory names are dropped.
func (c *Controller) CreateCategory(ctx context.Context, name string, subcategories []string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, invalidf("category name is required")
	}

	cat := models.Category{Name: name, Subcategories: []string{}}
	for _, s := range subcategories {
		s = strings.TrimSpace(s)
		if s != "" && !cat.HasSubcategory(s) {
			cat.Subcategories = append(cat.Subcategories, s)
		}
	}

	c.mu.Lock()
	for _, existing := range c.snap.Categories {
		if strings.EqualFold(existing.Name, name) {
			c.mu.Unlock()
			return models.Category{}, fmt.Errorf("%w: category %q", ErrConflict, name)
		}
	}
	cat.ID = c.newID()
	if err := c.store.SaveCategory(ctx, &cat); err != nil {
		c.mu.Unlock()
		return models.Category{}, syncFailed(err)
	}
	c.snap.Categories = append(c.snap.Categories, cat)
	c.mu.Unlock()

	c.notify(Event{Kind: EventCategoriesChanged})
	return cloneCategory(cat), nil
}

// DeleteCategory removes a category. Bills keep their category text.
func (c *Controller) DeleteCategory(ctx context.Context, id string) error {
	c.mu.Lock()
	i := c.categoryIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return notFoundf("category %s", id)
	}
	if err := c.store.DeleteCategory(ctx, id); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Categories = slices.Delete(c.snap.Categories, i, i+1)
	c.mu.Unlock()

	c.notify(Event{Kind: EventCategoriesChanged})
	return nil
}

// AddSubcategory adds name to a category. Adding an existing name is a
// no-op.
func (c *Controller) AddSubcategory(ctx context.Context, categoryID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, invalidf("subcategory name is required")
	}
	return c.updateCategory(ctx, categoryID, func(cat *models.Category) bool {
		if cat.HasSubcategory(name) {
			return false
		}
		cat.Subcategories = append(cat.Subcategories, name)
		return true
	})
}

// RemoveSubcategory removes name from a category. Removing a missing name
// is a no-op.
func (c *Controller) RemoveSubcategory(ctx context.Context, categoryID, name string) (models.Category, error) {
	return c.updateCategory(ctx, categoryID, func(cat *models.Category) bool {
		i := slices.Index(cat.Subcategories, name)
		if i < 0 {
			return false
		}
		cat.Subcategories = slices.Delete(cat.Subcategories, i, i+1)
		return true
	})
}

// updateCategory applies fn to a copy of the category and writes it back if
// fn reports a change.
func (c *Controller) updateCategory(ctx context.Context, id string, fn func(*models.Category) bool) (models.Category, error) {
	c.mu.Lock()
	i := c.categoryIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Category{}, notFoundf("category %s", id)
	}

	cat := cloneCategory(c.snap.Categories[i])
	if !fn(&cat) {
		c.mu.Unlock()
		return cat, nil
	}
	if err := c.store.SaveCategory(ctx, &cat); err != nil {
		c.mu.Unlock()
		return models.Category{}, syncFailed(err)
	}
	c.snap.Categories[i] = cat
	c.mu.Unlock()

	c.notify(Event{Kind: EventCategoriesChanged})
	return cloneCategory(cat), nil
}

func (c *Controller) categoryIndex(id string) int {
	return slices.IndexFunc(c.snap.Categories, func(cat models.Category) bool { return cat.ID == id })
}

func cloneCategory(cat models.Category) models.Category {
	cat.Subcategories = append([]string{}, cat.Subcategories...)
	return cat
}
