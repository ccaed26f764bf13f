package invoice

import (
	"fmt"
	"strings"
)

// Render produces the terminal receipt. The layout is fixed so tests can
// match output verbatim; every amount carries exactly two decimals.
func (inv *Invoice) Render(storeName, currency string) string {
	var b strings.Builder

	fmt.Fprintln(&b, "===============================")
	fmt.Fprintln(&b, storeName)
	fmt.Fprintf(&b, "Bill ID: %s\n", inv.ID)
	fmt.Fprintf(&b, "Date: %s\n", inv.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b, "-------------------------------")
	fmt.Fprintln(&b, "ITEM DETAILS:")
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "%-20s %3d x %s%-8s %s%-8s\n",
			l.Item.Name, l.Quantity,
			currency, l.Item.UnitPrice.StringFixed(2),
			currency, l.ExtendedPrice().StringFixed(2))
	}
	fmt.Fprintln(&b, "-------------------------------")
	fmt.Fprintln(&b, "TAX BREAKDOWN:")
	fmt.Fprintf(&b, "Subtotal:        %s%s\n", currency, inv.Subtotal().StringFixed(2))
	fmt.Fprintf(&b, "CGST (9%%):       %s%s\n", currency, inv.TotalCGST().StringFixed(2))
	fmt.Fprintf(&b, "SGST (9%%):       %s%s\n", currency, inv.TotalSGST().StringFixed(2))
	fmt.Fprintf(&b, "Total GST:       %s%s\n", currency, inv.TotalCGST().Add(inv.TotalSGST()).StringFixed(2))
	fmt.Fprintf(&b, "Total Bill:      %s%s\n", currency, inv.GrandTotal().StringFixed(2))
	fmt.Fprintln(&b, "===============================")

	return b.String()
}
