// Package export writes transaction history to CSV and PDF files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hance08/dompet/internal/ui/listing"
	"github.com/phpdave11/gofpdf"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use csv or pdf)", s)
	}
}

// Statement is what gets exported.
type Statement struct {
	Owner       string
	GeneratedAt time.Time
	Rows        []listing.Row
}

var csvHeader = []string{"id", "date", "type", "counterparty", "category", "description", "direction", "amount", "formatted_amount"}

func WriteCSV(w io.Writer, st Statement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range st.Rows {
		amount := r.Transaction.Amount
		if r.Direction.Sign() < 0 {
			amount = amount.Neg()
		}

		date := ""
		if !r.Transaction.TransactionDate.IsZero() {
			date = r.Transaction.TransactionDate.Format(time.RFC3339)
		}

		record := []string{
			r.ID,
			date,
			string(r.Transaction.TransactionType),
			r.Counterparty,
			r.Category,
			r.Transaction.Description,
			r.Direction.String(),
			amount.String(),
			r.Amount,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 38, "L"},
	{"Type", 28, "L"},
	{"From/To", 48, "L"},
	{"Category", 32, "L"},
	{"Description", 78, "L"},
	{"Amount", 48, "R"},
}

func WritePDF(w io.Writer, st Statement) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("dompet transaction history", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Transaction History")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if st.Owner != "" {
		pdf.Cell(0, 7, tr("Account: "+st.Owner))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, "Generated: "+st.GeneratedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(168, 218, 220)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range st.Rows {
		values := []string{r.Date, r.Type, r.Counterparty, r.Category, r.Description, r.Amount}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 7, tr(truncate(values[i], int(c.width/2))), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(st.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 10, "No transactions found")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func Write(w io.Writer, format Format, st Statement) error {
	switch format {
	case FormatPDF:
		return WritePDF(w, st)
	default:
		return WriteCSV(w, st)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
