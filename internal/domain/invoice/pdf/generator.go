package pdf

import "quickmart/pos/internal/domain/invoice"

type Generator interface {
	Generate(inv *invoice.Invoice, storeName, currency string) ([]byte, error)
}
