package models

// Category groups bills. Subcategories are an unordered set of names;
// the slice order carries no meaning.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// HasSubcategory reports whether name is already one of the subcategories.
func (c *Category) HasSubcategory(name string) bool {
	for _, s := range c.Subcategories {
		if s == name {
			return true
		}
	}
	return false
}
