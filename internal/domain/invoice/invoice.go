package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quickmart/pos/internal/domain/catalog"
)

// CGST and SGST are two separate flat components so the receipt can show
// each on its own line. Rates are fixed, not jurisdiction-configurable.
var (
	cgstRate = decimal.RequireFromString("0.09")
	sgstRate = decimal.RequireFromString("0.09")
)

// LineItem pairs a catalog item with a requested quantity. Derived amounts
// are computed on demand; a line never changes once appended.
type LineItem struct {
	Item     catalog.Item
	Quantity int
}

func (l LineItem) ExtendedPrice() decimal.Decimal {
	return l.Item.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l LineItem) CGST() decimal.Decimal { return l.ExtendedPrice().Mul(cgstRate) }
func (l LineItem) SGST() decimal.Decimal { return l.ExtendedPrice().Mul(sgstRate) }

type Invoice struct {
	ID        string
	CreatedAt time.Time
	Lines     []LineItem
}

func New() *Invoice {
	return &Invoice{
		ID:        "BILL-" + uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// AddLine appends a line for item with the given quantity.
func (inv *Invoice) AddLine(it catalog.Item, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	inv.Lines = append(inv.Lines, LineItem{Item: it, Quantity: qty})
	return nil
}

func (inv *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range inv.Lines {
		sum = sum.Add(l.ExtendedPrice())
	}
	return sum
}

func (inv *Invoice) TotalCGST() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range inv.Lines {
		sum = sum.Add(l.CGST())
	}
	return sum
}

func (inv *Invoice) TotalSGST() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range inv.Lines {
		sum = sum.Add(l.SGST())
	}
	return sum
}

func (inv *Invoice) GrandTotal() decimal.Decimal {
	return inv.Subtotal().Add(inv.TotalCGST()).Add(inv.TotalSGST())
}
