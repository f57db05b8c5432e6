package filestore

import (
	"context"
	"fmt"
	"slices"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// SaveBill inserts or overwrites a bill, keeping its position.
func (s *FileStore) SaveBill(ctx context.Context, bill *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bills []models.Bill
	if err := s.readBills(&bills); err != nil {
		return err
	}
	if i := billIndex(bills, bill.ID); i >= 0 {
		bills[i] = *bill
	} else {
		bills = append(bills, *bill)
	}
	return s.writeBills(bills)
}

// PatchBill applies the non-nil patch fields to a stored bill.
func (s *FileStore) PatchBill(ctx context.Context, id string, patch models.BillPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bills []models.Bill
	if err := s.readBills(&bills); err != nil {
		return err
	}
	i := billIndex(bills, id)
	if i < 0 {
		return notFound("bill", id)
	}
	bills[i] = patch.Apply(bills[i])
	return s.writeBills(bills)
}

// DeleteBill removes a bill.
func (s *FileStore) DeleteBill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bills []models.Bill
	if err := s.readBills(&bills); err != nil {
		return err
	}
	i := billIndex(bills, id)
	if i < 0 {
		return notFound("bill", id)
	}
	return s.writeBills(slices.Delete(bills, i, i+1))
}

// CreateBills appends a batch and registers companies. The bills document
// is restored if the companies document cannot be written.
func (s *FileStore) CreateBills(ctx context.Context, batch []models.Bill, companies []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bills []models.Bill
	if err := s.readBills(&bills); err != nil {
		return err
	}
	var registry []string
	if err := s.read(KeyCompanies, &registry); err != nil {
		return err
	}

	for _, b := range batch {
		if billIndex(bills, b.ID) >= 0 {
			return fmt.Errorf("bill %s already exists", b.ID)
		}
	}
	previous := slices.Clone(bills)
	bills = append(bills, batch...)

	updated, changed := mergeCompanies(registry, companies)

	if err := s.writeBills(bills); err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.write(KeyCompanies, updated); err != nil {
		if rerr := s.writeBills(previous); rerr != nil {
			return fmt.Errorf("%w (restore failed: %v)", err, rerr)
		}
		return err
	}
	return nil
}

// SaveCategory inserts or overwrites a category.
func (s *FileStore) SaveCategory(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.Category
	if err := s.read(KeyCategories, &categories); err != nil {
		return err
	}
	c := *category
	c.Subcategories = slices.Clone(c.Subcategories)
	if c.Subcategories == nil {
		c.Subcategories = []string{}
	}
	if i := slices.IndexFunc(categories, func(x models.Category) bool { return x.ID == c.ID }); i >= 0 {
		categories[i] = c
	} else {
		categories = append(categories, c)
	}
	return s.write(KeyCategories, categories)
}

// DeleteCategory removes a category.
func (s *FileStore) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.Category
	if err := s.read(KeyCategories, &categories); err != nil {
		return err
	}
	i := slices.IndexFunc(categories, func(x models.Category) bool { return x.ID == id })
	if i < 0 {
		return notFound("category", id)
	}
	return s.write(KeyCategories, slices.Delete(categories, i, i+1))
}

// SaveUser inserts or overwrites a user. Usernames must stay unique.
func (s *FileStore) SaveUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.read(KeyUsers, &users); err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == user.Username && u.ID != user.ID {
			return fmt.Errorf("username %q already exists", user.Username)
		}
	}
	if i := slices.IndexFunc(users, func(x models.User) bool { return x.ID == user.ID }); i >= 0 {
		users[i] = *user
	} else {
		users = append(users, *user)
	}
	return s.write(KeyUsers, users)
}

// DeleteUser removes a user.
func (s *FileStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.read(KeyUsers, &users); err != nil {
		return err
	}
	i := slices.IndexFunc(users, func(x models.User) bool { return x.ID == id })
	if i < 0 {
		return notFound("user", id)
	}
	return s.write(KeyUsers, slices.Delete(users, i, i+1))
}

// AddCompanies appends names not already registered.
func (s *FileStore) AddCompanies(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var registry []string
	if err := s.read(KeyCompanies, &registry); err != nil {
		return err
	}
	updated, changed := mergeCompanies(registry, names)
	if !changed {
		return nil
	}
	return s.write(KeyCompanies, updated)
}

// DeleteCompany removes a name from the registry.
func (s *FileStore) DeleteCompany(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var registry []string
	if err := s.read(KeyCompanies, &registry); err != nil {
		return err
	}
	i := slices.Index(registry, name)
	if i < 0 {
		return notFound("company", name)
	}
	return s.write(KeyCompanies, slices.Delete(registry, i, i+1))
}

func billIndex(bills []models.Bill, id string) int {
	return slices.IndexFunc(bills, func(b models.Bill) bool { return b.ID == id })
}

// mergeCompanies appends names missing from registry in first-seen order.
func mergeCompanies(registry, names []string) ([]string, bool) {
	changed := false
	for _, n := range names {
		if !slices.Contains(registry, n) {
			registry = append(registry, n)
			changed = true
		}
	}
	return registry, changed
}
