package state

import (
	"context"
	"slices"
	"strings"
)

// Companies returns the registry of company names in insertion order.
func (c *Controller) Companies() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.snap.Companies)
}

// AddCompany registers a company name. Adding an existing name is a no-op.
func (c *Controller) AddCompany(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("company name is required")
	}

	c.mu.Lock()
	if slices.Contains(c.snap.Companies, name) {
		c.mu.Unlock()
		return nil
	}
	if err := c.store.AddCompanies(ctx, []string{name}); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Companies = append(c.snap.Companies, name)
	c.mu.Unlock()

	c.notify(Event{Kind: EventCompaniesChanged})
	return nil
}

// DeleteCompany removes a name from the registry. Existing bills keep their
// company name.
func (c *Controller) DeleteCompany(ctx context.Context, name string) error {
	c.mu.Lock()
	i := slices.Index(c.snap.Companies, name)
	if i < 0 {
		c.mu.Unlock()
		return notFoundf("company %q", name)
	}
	if err := c.store.DeleteCompany(ctx, name); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Companies = slices.Delete(c.snap.Companies, i, i+1)
	c.mu.Unlock()

	c.notify(Event{Kind: EventCompaniesChanged})
	return nil
}
