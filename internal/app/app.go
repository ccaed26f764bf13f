package app

import (
	"log"
	"os"

	"quickmart/pos/internal/app/config"
	"quickmart/pos/internal/app/session"
	"quickmart/pos/internal/domain/catalog"
	pdfgen "quickmart/pos/internal/domain/invoice/pdf/gofpdf"
)

func Run() {
	cfg := config.Load()

	cat := catalog.Seed()

	if cfg.ReceiptDir != "" {
		if err := os.MkdirAll(cfg.ReceiptDir, 0o755); err != nil {
			log.Fatalf("receipt dir: %v", err)
		}
	}

	s := session.New(cfg, cat, pdfgen.New(), os.Stdin, os.Stdout)
	s.Run()
}
