package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quickmart/pos/internal/app/config"
	"quickmart/pos/internal/domain/catalog"
	"quickmart/pos/internal/domain/invoice"
	"quickmart/pos/internal/domain/invoice/pdf"
)

// ErrBadNumber marks operator input that should have been a number.
// The session reports it and re-prompts; it never terminates the process.
var ErrBadNumber = errors.New("expected a number")

type State int

const (
	MainMenu State = iota
	BuildingInvoice
	Terminated
)

// Session drives the interactive billing loop. All reads and writes go
// through the injected reader/writer; the catalog is passed in explicitly.
type Session struct {
	cfg     config.Config
	catalog *catalog.Catalog
	pdfGen  pdf.Generator // optional, used when cfg.ReceiptDir is set

	in    *bufio.Scanner
	out   io.Writer
	state State
}

func New(cfg config.Config, cat *catalog.Catalog, gen pdf.Generator, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:     cfg,
		catalog: cat,
		pdfGen:  gen,
		in:      bufio.NewScanner(in),
		out:     out,
		state:   MainMenu,
	}
}

// State reports the current loop state.
func (s *Session) State() State { return s.state }

// Run loops until the operator exits or input ends.
func (s *Session) Run() {
	for s.state != Terminated {
		switch s.state {
		case MainMenu:
			s.mainMenu()
		case BuildingInvoice:
			s.buildInvoice()
		}
	}
}

func (s *Session) mainMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "--- %s ---\n", s.cfg.StoreName)
	fmt.Fprintln(s.out, "1. View Products")
	fmt.Fprintln(s.out, "2. Create New Bill")
	fmt.Fprintln(s.out, "3. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")

	line, ok := s.readLine()
	if !ok {
		s.state = Terminated
		return
	}
	choice, err := parseInt(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a number between 1 and 3.")
		return
	}
	switch choice {
	case 1:
		s.printCatalog()
	case 2:
		s.state = BuildingInvoice
	case 3:
		fmt.Fprintf(s.out, "Thank you for using %s!\n", s.cfg.StoreName)
		s.state = Terminated
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}
}

func (s *Session) buildInvoice() {
	inv := invoice.New()

	for {
		s.printCatalog()
		fmt.Fprint(s.out, "Enter Product ID (or 'done' to finish): ")
		line, ok := s.readLine()
		if !ok {
			break
		}
		id := strings.TrimSpace(line)
		if strings.EqualFold(id, "done") {
			break
		}

		item, err := s.catalog.Lookup(id)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid Product ID!")
			continue
		}

		fmt.Fprint(s.out, "Enter Quantity: ")
		qtyLine, ok := s.readLine()
		if !ok {
			break
		}
		qty, err := parseInt(qtyLine)
		if err != nil {
			fmt.Fprintln(s.out, "Quantity must be a whole number.")
			continue
		}
		if err := inv.AddLine(item, qty); err != nil {
			fmt.Fprintln(s.out, "Quantity must be at least 1.")
			continue
		}
	}

	fmt.Fprint(s.out, inv.Render(s.cfg.StoreName, s.cfg.Currency))
	s.exportPDF(inv)
	s.state = MainMenu
}

func (s *Session) printCatalog() {
	fmt.Fprintln(s.out, "Available Products:")
	for _, it := range s.catalog.ListAll() {
		fmt.Fprintf(s.out, "%s - %s (HSN: %s): %s%s\n",
			it.ID, it.Name, it.TaxCode, s.cfg.Currency, it.UnitPrice.StringFixed(2))
	}
}

// exportPDF writes a PDF copy of the receipt when RECEIPT_DIR is configured.
// The terminal receipt is the source of truth; a failed export only logs.
func (s *Session) exportPDF(inv *invoice.Invoice) {
	if s.cfg.ReceiptDir == "" || s.pdfGen == nil {
		return
	}
	data, err := s.pdfGen.Generate(inv, s.cfg.StoreName, s.cfg.Currency)
	if err != nil {
		log.Printf("receipt pdf: generate failed: %v", err)
		return
	}
	path := filepath.Join(s.cfg.ReceiptDir, inv.ID+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("receipt pdf: write %s failed: %v", path, err)
		return
	}
	log.Printf("receipt pdf: saved %s", path)
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, raw)
	}
	return n, nil
}
