package catalog

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

// Item is a purchasable product. Immutable after seeding.
type Item struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Category  string
	TaxCode   string // HSN code printed on the catalog listing
}

type Catalog struct {
	items map[string]Item
}

func New() *Catalog {
	return &Catalog{items: make(map[string]Item)}
}

// Add inserts or overwrites by ID.
func (c *Catalog) Add(it Item) {
	c.items[it.ID] = it
}

func (c *Catalog) Lookup(id string) (Item, error) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

// ListAll returns items sorted by ID so the catalog prints the same way
// every time.
func (c *Catalog) ListAll() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
