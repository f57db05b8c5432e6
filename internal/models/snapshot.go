package models

// Snapshot is the full state held by a storage backend.
type Snapshot struct {
	Bills      []Bill
	Categories []Category
	Users      []User
	Companies  []string
}

// Clone returns a deep copy so callers can't alias controller state.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Bills:      append([]Bill(nil), s.Bills...),
		Categories: make([]Category, len(s.Categories)),
		Users:      append([]User(nil), s.Users...),
		Companies:  append([]string(nil), s.Companies...),
	}
	for i, c := range s.Categories {
		c.Subcategories = append([]string(nil), c.Subcategories...)
		out.Categories[i] = c
	}
	return out
}
