package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeedLookup(t *testing.T) {
	c := Seed()

	tests := []struct {
		id       string
		name     string
		price    string
		category string
		taxCode  string
	}{
		{"P001", "Milk", "3.50", "Dairy", "0404"},
		{"P002", "Bread", "2.25", "Bakery", "1905"},
		{"P003", "Eggs", "4.00", "Dairy", "0407"},
		{"P004", "Cheese", "5.50", "Dairy", "0406"},
		{"P005", "Apple", "0.50", "Fruits", "0808"},
	}

	for _, tt := range tests {
		it, err := c.Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%s): unexpected error: %v", tt.id, err)
		}
		if it.Name != tt.name {
			t.Errorf("Lookup(%s): name = %q, want %q", tt.id, it.Name, tt.name)
		}
		if !it.UnitPrice.Equal(decimal.RequireFromString(tt.price)) {
			t.Errorf("Lookup(%s): price = %s, want %s", tt.id, it.UnitPrice, tt.price)
		}
		if it.Category != tt.category {
			t.Errorf("Lookup(%s): category = %q, want %q", tt.id, it.Category, tt.category)
		}
		if it.TaxCode != tt.taxCode {
			t.Errorf("Lookup(%s): tax code = %q, want %q", tt.id, it.TaxCode, tt.taxCode)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	c := Seed()
	if _, err := c.Lookup("P999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup(P999): error = %v, want ErrNotFound", err)
	}
	if _, err := c.Lookup(""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup(\"\"): error = %v, want ErrNotFound", err)
	}
}

func TestListAllSortedByID(t *testing.T) {
	c := Seed()
	items := c.ListAll()
	if len(items) != 5 {
		t.Fatalf("ListAll: got %d items, want 5", len(items))
	}
	want := []string{"P001", "P002", "P003", "P004", "P005"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("ListAll[%d]: ID = %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestAddOverwritesByID(t *testing.T) {
	c := New()
	c.Add(Item{ID: "P010", Name: "Butter", UnitPrice: decimal.RequireFromString("6.00")})
	c.Add(Item{ID: "P010", Name: "Butter", UnitPrice: decimal.RequireFromString("6.50")})

	it, err := c.Lookup("P010")
	if err != nil {
		t.Fatalf("Lookup after Add: %v", err)
	}
	if !it.UnitPrice.Equal(decimal.RequireFromString("6.50")) {
		t.Errorf("Add did not overwrite: price = %s, want 6.50", it.UnitPrice)
	}
	if len(c.ListAll()) != 1 {
		t.Errorf("expected a single item after overwrite, got %d", len(c.ListAll()))
	}
}
