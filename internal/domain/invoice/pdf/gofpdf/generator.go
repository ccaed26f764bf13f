package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"quickmart/pos/internal/domain/invoice"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(inv *invoice.Invoice, storeName, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(storeName, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, storeName)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s from %s", inv.ID, inv.CreatedAt.Format("02.01.2006 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(90, 7, "Item")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(30, 7, "Price")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, l := range inv.Lines {
		pdf.Cell(90, 6, trim(l.Item.Name, 50))
		pdf.Cell(20, 6, fmt.Sprintf("%d", l.Quantity))
		pdf.Cell(30, 6, currency+l.Item.UnitPrice.StringFixed(2))
		pdf.Cell(30, 6, currency+l.ExtendedPrice().StringFixed(2))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %s%s", currency, inv.Subtotal().StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("CGST (9%%): %s%s   SGST (9%%): %s%s",
		currency, inv.TotalCGST().StringFixed(2),
		currency, inv.TotalSGST().StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %s%s", currency, inv.GrandTotal().StringFixed(2)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("receipt pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
