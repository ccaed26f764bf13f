package catalog

import "github.com/shopspring/decimal"

// Seed builds the fixed startup catalog.
func Seed() *Catalog {
	c := New()
	c.Add(Item{ID: "P001", Name: "Milk", UnitPrice: decimal.RequireFromString("3.50"), Category: "Dairy", TaxCode: "0404"})
	c.Add(Item{ID: "P002", Name: "Bread", UnitPrice: decimal.RequireFromString("2.25"), Category: "Bakery", TaxCode: "1905"})
	c.Add(Item{ID: "P003", Name: "Eggs", UnitPrice: decimal.RequireFromString("4.00"), Category: "Dairy", TaxCode: "0407"})
	c.Add(Item{ID: "P004", Name: "Cheese", UnitPrice: decimal.RequireFromString("5.50"), Category: "Dairy", TaxCode: "0406"})
	c.Add(Item{ID: "P005", Name: "Apple", UnitPrice: decimal.RequireFromString("0.50"), Category: "Fruits", TaxCode: "0808"})
	return c
}
