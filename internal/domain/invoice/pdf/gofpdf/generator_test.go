package gofpdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"quickmart/pos/internal/domain/catalog"
	"quickmart/pos/internal/domain/invoice"
)

func TestGenerate(t *testing.T) {
	inv := invoice.New()
	milk := catalog.Item{ID: "P001", Name: "Milk", UnitPrice: decimal.RequireFromString("3.50")}
	if err := inv.AddLine(milk, 2); err != nil {
		t.Fatal(err)
	}

	data, err := New().Generate(inv, "SUPERMARKET BILLING SYSTEM", "$")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Generate returned empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("not a PDF document: % x", data[:8])
	}
}

func TestGenerateEmptyInvoice(t *testing.T) {
	data, err := New().Generate(invoice.New(), "SUPERMARKET BILLING SYSTEM", "$")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Generate returned empty document")
	}
}
