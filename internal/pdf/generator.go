package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/obinna/dredgeops/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders an entity statement: the reconciled totals followed by
// the trip and payment lines they were computed from.
func (g *Generator) Generate(statement model.EntityStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Account Statement", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %s (%s)", kindLabel(statement.Kind), statement.Name, statement.Code), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", orOpen(statement.DateFrom, "start"), orOpen(statement.DateTo, "now")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total volume: %s CBM", formatVolume(statement.Summary.TotalVolume)), "", 1, "L", false, 0, "")
	if statement.Kind == model.EntityKindTransporter {
		pdf.CellFormat(0, 6, fmt.Sprintf("Total trips: %d", statement.Summary.TotalTripsCount), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Amount billed: NGN %s", formatAmount(statement.Summary.TotalAmount)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Amount paid: NGN %s", formatAmount(statement.Summary.TotalPaid)), "", 1, "L", false, 0, "")

	if statement.Summary.Due() {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Balance: NGN %s (%s)", formatAmount(statement.Summary.Balance), dueLabel(statement.Summary)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Trips", "", 1, "L", false, 0, "")

	tripHeaders := []string{"Date", "Plate", "Trips", "Volume, CBM", "Rate", "Amount"}
	tripWidths := []float64{25, 35, 18, 30, 30, 42}
	drawTableRow(pdf, g.fontName, tripHeaders, tripWidths, true)
	for _, trip := range statement.Trips {
		rate := trip.DredgerRate
		if statement.Kind == model.EntityKindTransporter {
			rate = trip.TransporterRate
		}
		drawTableRow(pdf, g.fontName, []string{
			trip.Date,
			trip.PlateNumber,
			fmt.Sprintf("%d", trip.Trips),
			formatVolume(trip.TotalVolume),
			formatAmount(rate),
			formatAmount(trip.TotalVolume * rate),
		}, tripWidths, false)
	}
	if len(statement.Trips) == 0 {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, "No trips in period.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Payments", "", 1, "L", false, 0, "")

	paymentHeaders := []string{"Date", "Method", "Reference", "Amount"}
	paymentWidths := []float64{25, 45, 60, 50}
	drawTableRow(pdf, g.fontName, paymentHeaders, paymentWidths, true)
	for _, payment := range statement.Payments {
		drawTableRow(pdf, g.fontName, []string{
			payment.Date,
			payment.PaymentMethod,
			payment.Reference,
			formatAmount(payment.Amount),
		}, paymentWidths, false)
	}
	if len(statement.Payments) == 0 {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, "No payments in period.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func kindLabel(kind model.EntityKind) string {
	if kind == model.EntityKindTransporter {
		return "Transporter"
	}
	return "Dredger"
}

func dueLabel(s model.EntitySummary) string {
	if s.Due() {
		return "Due"
	}
	return "Paid"
}

func orOpen(date, fallback string) string {
	if strings.TrimSpace(date) == "" {
		return fallback
	}
	return date
}

func formatVolume(value float64) string {
	return fmt.Sprintf("%.3f", value)
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
