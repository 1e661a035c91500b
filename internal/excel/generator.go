package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/obinna/dredgeops/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the project report workbook: a summary sheet, one sheet
// of reconciled rows per entity kind, and a dumping-location breakdown.
func (g *Generator) Generate(report model.ProjectReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	file.NewSheet("Dredgers")
	if err := g.writeDredgers(file, "Dredgers", report.Dredgers); err != nil {
		return nil, err
	}

	file.NewSheet("Transporters")
	if err := g.writeTransporters(file, "Transporters", report.Transporters); err != nil {
		return nil, err
	}

	file.NewSheet("Locations")
	if err := g.writeLocations(file, "Locations", report.Locations); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ProjectReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", orBound(report.DateFrom, "start"))
	set("A2", "Period end")
	set("B2", orBound(report.DateTo, "now"))
	set("A3", "Total volume, CBM")
	set("B3", formatVolume(report.Summary.TotalVolume))
	set("A4", "Total trips")
	set("B4", report.Summary.TotalTrips)
	set("A5", "Total dredger cost")
	set("B5", formatAmount(report.Summary.TotalDredgerCost))
	set("A6", "Total transporter cost")
	set("B6", formatAmount(report.Summary.TotalTransporterCost))
	set("A7", "Total paid")
	set("B7", formatAmount(report.Summary.TotalPaid))
	set("A8", "Outstanding balance")
	set("B8", formatAmount(report.Summary.OutstandingBalance))

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeDredgers(file *excelize.File, sheet string, rows []model.DredgerReportRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Code", "Name", "Contractor", "Rate/CBM", "Volume, CBM", "Amount", "Paid", "Balance", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.Dredger.Code)
		set(fmt.Sprintf("B%d", r), row.Dredger.Name)
		set(fmt.Sprintf("C%d", r), row.Dredger.Contractor)
		set(fmt.Sprintf("D%d", r), formatAmount(row.Dredger.RatePerCbm))
		set(fmt.Sprintf("E%d", r), formatVolume(row.Summary.TotalVolume))
		set(fmt.Sprintf("F%d", r), formatAmount(row.Summary.TotalAmount))
		set(fmt.Sprintf("G%d", r), formatAmount(row.Summary.TotalPaid))
		set(fmt.Sprintf("H%d", r), formatAmount(row.Summary.Balance))
		set(fmt.Sprintf("I%d", r), dueLabel(row.Summary))
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "C", 28)
	_ = file.SetColWidth(sheet, "D", "H", 16)
	_ = file.SetColWidth(sheet, "I", "I", 10)
	return nil
}

func (g *Generator) writeTransporters(file *excelize.File, sheet string, rows []model.TransporterReportRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Code", "Name", "Contractor", "Rate/CBM", "Trips", "Volume, CBM", "Amount", "Paid", "Balance", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.Transporter.Code)
		set(fmt.Sprintf("B%d", r), row.Transporter.Name)
		set(fmt.Sprintf("C%d", r), row.Transporter.Contractor)
		set(fmt.Sprintf("D%d", r), formatAmount(row.Transporter.RatePerCbm))
		set(fmt.Sprintf("E%d", r), row.Summary.TotalTripsCount)
		set(fmt.Sprintf("F%d", r), formatVolume(row.Summary.TotalVolume))
		set(fmt.Sprintf("G%d", r), formatAmount(row.Summary.TotalAmount))
		set(fmt.Sprintf("H%d", r), formatAmount(row.Summary.TotalPaid))
		set(fmt.Sprintf("I%d", r), formatAmount(row.Summary.Balance))
		set(fmt.Sprintf("J%d", r), dueLabel(row.Summary))
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "C", 28)
	_ = file.SetColWidth(sheet, "D", "I", 16)
	_ = file.SetColWidth(sheet, "J", "J", 10)
	return nil
}

func (g *Generator) writeLocations(file *excelize.File, sheet string, rows []model.LocationSummary) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Dumping location")
	set("B1", "Trips")
	set("C1", "Volume, CBM")

	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.Location)
		set(fmt.Sprintf("B%d", r), row.TripCount)
		set(fmt.Sprintf("C%d", r), formatVolume(row.TotalVolume))
	}

	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "C", 14)
	return nil
}

func orBound(date, fallback string) string {
	if date == "" {
		return fallback
	}
	return date
}

func dueLabel(s model.EntitySummary) string {
	if s.Due() {
		return "Due"
	}
	return "Paid"
}

func formatVolume(value float64) string {
	return fmt.Sprintf("%.3f", value)
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
