package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/model"
	"github.com/obinna/dredgeops/internal/repository"
	"github.com/obinna/dredgeops/internal/summary"
)

type ExcelGenerator interface {
	Generate(report model.ProjectReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(statement model.EntityStatement) ([]byte, error)
}

// ReportService reads a snapshot of the collections and runs the
// reconciliation engine over it. It never writes.
type ReportService struct {
	dredgers     *repository.DredgerRepository
	transporters *repository.TransporterRepository
	trips        *repository.TripRepository
	payments     *repository.PaymentRepository
	excel        ExcelGenerator
	pdf          PDFGenerator
}

func NewReportService(
	dredgers *repository.DredgerRepository,
	transporters *repository.TransporterRepository,
	trips *repository.TripRepository,
	payments *repository.PaymentRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *ReportService {
	return &ReportService{
		dredgers:     dredgers,
		transporters: transporters,
		trips:        trips,
		payments:     payments,
		excel:        excel,
		pdf:          pdf,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) EntityReport(
	ctx context.Context,
	kind model.EntityKind,
	entityID uuid.UUID,
	dateFrom, dateTo string,
) (model.EntitySummary, error) {
	trips, payments, err := s.loadLog(ctx)
	if err != nil {
		return model.EntitySummary{}, err
	}
	return summary.Entity(kind, entityID, trips, payments, dateFrom, dateTo), nil
}

func (s *ReportService) ProjectReport(ctx context.Context) (model.ProjectSummary, error) {
	trips, payments, err := s.loadLog(ctx)
	if err != nil {
		return model.ProjectSummary{}, err
	}
	return summary.Project(trips, payments), nil
}

func (s *ReportService) LocationReport(ctx context.Context, dateFrom, dateTo string) ([]model.LocationSummary, error) {
	trips, err := s.trips.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	locations := summary.Locations(trips, dateFrom, dateTo)
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Location < locations[j].Location
	})
	return locations, nil
}

// BuildProjectReport assembles the workbook payload: project totals and a
// reconciled row for every registered dredger and transporter.
func (s *ReportService) BuildProjectReport(ctx context.Context, dateFrom, dateTo string) (*model.ProjectReport, error) {
	trips, payments, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	dredgers, err := s.dredgers.List(ctx)
	if err != nil {
		return nil, err
	}
	transporters, err := s.transporters.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildProjectReport(dredgers, transporters, trips, payments, dateFrom, dateTo), nil
}

// buildProjectReport reconciles every section of the workbook over the same
// inclusive date range, the project totals included, so the summary sheet
// always equals the sum of the per-entity rows it sits next to.
func buildProjectReport(
	dredgers []model.Dredger,
	transporters []model.Transporter,
	trips []model.Trip,
	payments []model.Payment,
	dateFrom, dateTo string,
) *model.ProjectReport {
	var rangedTrips []model.Trip
	for _, t := range trips {
		if summary.InRange(t.Date, dateFrom, dateTo) {
			rangedTrips = append(rangedTrips, t)
		}
	}
	var rangedPayments []model.Payment
	for _, p := range payments {
		if summary.InRange(p.Date, dateFrom, dateTo) {
			rangedPayments = append(rangedPayments, p)
		}
	}

	report := &model.ProjectReport{
		DateFrom: summary.NormalizeDate(dateFrom),
		DateTo:   summary.NormalizeDate(dateTo),
		Summary:  summary.Project(rangedTrips, rangedPayments),
	}
	for _, d := range dredgers {
		report.Dredgers = append(report.Dredgers, model.DredgerReportRow{
			Dredger: d,
			Summary: summary.Entity(model.EntityKindDredger, d.ID, rangedTrips, rangedPayments, dateFrom, dateTo),
		})
	}
	for _, t := range transporters {
		report.Transporters = append(report.Transporters, model.TransporterReportRow{
			Transporter: t,
			Summary:     summary.Entity(model.EntityKindTransporter, t.ID, rangedTrips, rangedPayments, dateFrom, dateTo),
		})
	}
	locations := summary.Locations(rangedTrips, dateFrom, dateTo)
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Location < locations[j].Location
	})
	report.Locations = locations
	return report
}

func (s *ReportService) ExportWorkbook(ctx context.Context, dateFrom, dateTo string) (*ExportResult, error) {
	report, err := s.BuildProjectReport(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName("dredging-report", report.DateFrom, report.DateTo, "xlsx"),
		Content:  content,
	}, nil
}

// EntityStatement renders the PDF statement for one entity: reconciled
// totals plus the trip and payment lines behind them.
func (s *ReportService) EntityStatement(
	ctx context.Context,
	kind model.EntityKind,
	entityID uuid.UUID,
	dateFrom, dateTo string,
) (*ExportResult, error) {
	code, name, err := s.entityIdentity(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}

	trips, payments, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	statement := model.EntityStatement{
		Kind:     kind,
		Code:     code,
		Name:     name,
		Summary:  summary.Entity(kind, entityID, trips, payments, dateFrom, dateTo),
		DateFrom: summary.NormalizeDate(dateFrom),
		DateTo:   summary.NormalizeDate(dateTo),
	}
	for _, t := range trips {
		entityMatch := (kind == model.EntityKindDredger && t.DredgerID == entityID) ||
			(kind == model.EntityKindTransporter && t.TransporterID == entityID)
		if entityMatch && summary.InRange(t.Date, dateFrom, dateTo) {
			statement.Trips = append(statement.Trips, t)
		}
	}
	for _, p := range payments {
		if p.EntityType == kind && p.EntityID == entityID && summary.InRange(p.Date, dateFrom, dateTo) {
			statement.Payments = append(statement.Payments, p)
		}
	}

	content, err := s.pdf.Generate(statement)
	if err != nil {
		return nil, err
	}
	target := sanitizeFileName(code)
	if target == "" {
		target = entityID.String()
	}
	return &ExportResult{
		FileName: buildFileName("statement-"+target, statement.DateFrom, statement.DateTo, "pdf"),
		Content:  content,
	}, nil
}

func (s *ReportService) loadLog(ctx context.Context) ([]model.Trip, []model.Payment, error) {
	trips, err := s.trips.List(ctx, "", "")
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.payments.List(ctx, "", "")
	if err != nil {
		return nil, nil, err
	}
	return trips, payments, nil
}

func (s *ReportService) entityIdentity(ctx context.Context, kind model.EntityKind, entityID uuid.UUID) (string, string, error) {
	switch kind {
	case model.EntityKindDredger:
		d, err := s.dredgers.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", "", ErrNotFound
			}
			return "", "", err
		}
		return d.Code, d.Name, nil
	case model.EntityKindTransporter:
		t, err := s.transporters.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", "", ErrNotFound
			}
			return "", "", err
		}
		return t.Code, t.Name, nil
	default:
		return "", "", fmt.Errorf("%w: unknown entity kind", ErrInvalidInput)
	}
}

func buildFileName(base, dateFrom, dateTo, ext string) string {
	if dateFrom == "" && dateTo == "" {
		return fmt.Sprintf("%s.%s", base, ext)
	}
	from := dateFrom
	if from == "" {
		from = "start"
	}
	to := dateTo
	if to == "" {
		to = "now"
	}
	return fmt.Sprintf("%s-%s-%s.%s", base, from, to, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
