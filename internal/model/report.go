package model

// ProjectReport is the full workbook payload: project totals plus one row
// per registered entity, each reconciled over the same date range.
type ProjectReport struct {
	DateFrom     string
	DateTo       string
	Summary      ProjectSummary
	Dredgers     []DredgerReportRow
	Transporters []TransporterReportRow
	Locations    []LocationSummary
}

type DredgerReportRow struct {
	Dredger Dredger
	Summary EntitySummary
}

type TransporterReportRow struct {
	Transporter Transporter
	Summary     EntitySummary
}
