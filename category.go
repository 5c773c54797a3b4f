package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// defaultColor is used when a category is created without one.
const defaultColor = "#888888"

// Category labels transactions for reporting. Identity is the id only; name
// and color are display attributes.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex, for charts
}

// Equal reports whether both categories have the same identity.
func (c Category) Equal(o Category) bool { return c.ID == o.ID }

// Categories is the mutable collection of categories known to the ledger.
type Categories struct {
	list  []Category
	index map[string]int // id to position in list
}

// NewCategories returns an empty category collection.
func NewCategories() *Categories {
	return &Categories{index: make(map[string]int)}
}

// DefaultCategories returns the collection seeded on first run.
func DefaultCategories() *Categories {
	c := NewCategories()
	c.Add("Salary", "#4CAF50")
	c.Add("Food", "#FF9800")
	c.Add("Transport", "#2196F3")
	return c
}

// Add creates a new category with a fresh id and appends it to the collection.
func (c *Categories) Add(name, color string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, fmt.Errorf("category name must not be empty")
	}
	if color == "" {
		color = defaultColor
	}
	cat := Category{ID: uuid.NewString(), Name: name, Color: color}
	c.append(cat)
	return cat, nil
}

func (c *Categories) append(cat Category) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[cat.ID] = len(c.list)
	c.list = append(c.list, cat)
}

// Rename changes the display name of the category with the given id.
func (c *Categories) Rename(id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name must not be empty")
	}
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("cannot rename %q: %w", id, ErrCategoryNotFound)
	}
	c.list[i].Name = name
	return nil
}

// Remove deletes the category with the given id and reports whether it
// existed. Transactions referencing it keep their dangling reference and
// render as uncategorized.
func (c *Categories) Remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.list = slices.Delete(c.list, i, i+1)
	c.reindex()
	return true
}

func (c *Categories) reindex() {
	c.index = make(map[string]int, len(c.list))
	for i, cat := range c.list {
		c.index[cat.ID] = i
	}
}

// Find returns the category with the given id, or false when absent. An empty
// id is always absent.
func (c *Categories) Find(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.list[i], true
}

// FindByName returns the first category with the given display name.
func (c *Categories) FindByName(name string) (Category, bool) {
	for _, cat := range c.list {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Require is the strict variant of Find.
func (c *Categories) Require(id string) (Category, error) {
	cat, ok := c.Find(id)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	return cat, nil
}

// All returns a copy of the categories in insertion order.
func (c *Categories) All() []Category { return slices.Clone(c.list) }

// Len returns the number of categories.
func (c *Categories) Len() int { return len(c.list) }
