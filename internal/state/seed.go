package state

import (
	"context"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// DefaultCategories are seeded into an empty store.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "cat_1", Name: "Software Subscription", Subcategories: []string{"Cloud Infrastructure", "SaaS", "Development Tools", "Design Tools"}},
		{ID: "cat_2", Name: "Utilities", Subcategories: []string{"Electricity", "Water", "Internet", "Phone"}},
		{ID: "cat_3", Name: "Rent/Lease", Subcategories: []string{"Office Space", "Equipment", "Vehicle"}},
		{ID: "cat_4", Name: "Contractors", Subcategories: []string{"Development", "Design", "Consulting", "Cleaning"}},
		{ID: "cat_5", Name: "Marketing", Subcategories: []string{"Ads", "Social Media", "Events", "Print"}},
		{ID: "cat_6", Name: "Legal", Subcategories: []string{"Retainer", "Filing Fees", "Consultation"}},
		{ID: "cat_7", Name: "Hardware", Subcategories: []string{"Laptops", "Peripherals", "Servers"}},
		{ID: "cat_8", Name: "Other", Subcategories: []string{"Miscellaneous"}},
	}
}

// DefaultCompanies are seeded into an empty store.
func DefaultCompanies() []string {
	return []string{"Acme Corp", "Beta Ltd", "Gamma Inc", "Metalsigns", "Donad Group", "Unitrac MV"}
}

// Seed fills a freshly created store. On a completely empty state it writes
// admin, the default categories and the default companies. If only the user
// list is empty, admin alone is written so the system stays reachable.
// It reports whether anything was written.
func (c *Controller) Seed(ctx context.Context, admin models.User) (bool, error) {
	c.mu.RLock()
	empty := len(c.snap.Bills) == 0 && len(c.snap.Categories) == 0 &&
		len(c.snap.Users) == 0 && len(c.snap.Companies) == 0
	noUsers := len(c.snap.Users) == 0
	c.mu.RUnlock()

	if !noUsers {
		return false, nil
	}

	if err := c.CreateUser(ctx, &admin); err != nil {
		return false, err
	}
	if !empty {
		c.logger.Warn("no users found, recreated admin account", "username", admin.Username)
		return true, nil
	}

	for _, cat := range DefaultCategories() {
		if err := c.store.SaveCategory(ctx, &cat); err != nil {
			return true, syncFailed(err)
		}
	}
	companies := DefaultCompanies()
	if err := c.store.AddCompanies(ctx, companies); err != nil {
		return true, syncFailed(err)
	}

	c.mu.Lock()
	c.snap.Categories = DefaultCategories()
	c.snap.Companies = companies
	c.mu.Unlock()

	c.logger.Info("seeded empty store",
		"admin", admin.Username,
		"categories", len(DefaultCategories()),
		"companies", len(companies),
	)
	c.notify(Event{Kind: EventCategoriesChanged})
	return true, nil
}
