// Package sheets reads the legacy spreadsheet the operation was run from
// before this service existed. The importer uses it for one-shot migration.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/obinna/dredgeops/internal/config"
)

type DredgerRow struct {
	Code       string
	Name       string
	Contractor string
	RatePerCbm float64
	Status     string
}

type TruckRow struct {
	PlateNumber string
	CapacityCbm float64
}

type TransporterRow struct {
	Code       string
	Name       string
	Contractor string
	RatePerCbm float64
	Status     string
	Trucks     []TruckRow
}

type TripRow struct {
	Date            string
	DredgerCode     string
	TransporterCode string
	PlateNumber     string
	Trips           int
	CapacityCbm     float64
	DredgerRate     float64
	TransporterRate float64
	DumpingLocation string
	Notes           string
}

type PaymentRow struct {
	Date          string
	EntityType    string
	EntityCode    string
	Amount        float64
	PaymentMethod string
	Reference     string
	Notes         string
}

type Reader struct {
	svc *gsheet.Service
	cfg config.SheetsConfig
}

func NewReader(ctx context.Context, cfg config.SheetsConfig) (*Reader, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("sheets: spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(gsheet.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &Reader{svc: svc, cfg: cfg}, nil
}

func (r *Reader) Dredgers(ctx context.Context) ([]DredgerRow, error) {
	values, err := r.readTab(ctx, r.cfg.DredgersSheet, "A:E")
	if err != nil {
		return nil, err
	}
	var out []DredgerRow
	for _, raw := range values {
		cols := toStrings(raw)
		code := colAt(cols, 0)
		if code == "" || isHeader(code, "code") {
			continue
		}
		out = append(out, DredgerRow{
			Code:       code,
			Name:       colAt(cols, 1),
			Contractor: colAt(cols, 2),
			RatePerCbm: parseFloat(colAt(cols, 3)),
			Status:     colAt(cols, 4),
		})
	}
	return out, nil
}

// Transporters groups the tab by code: the sheet carries one row per truck,
// repeating the transporter columns on every row.
func (r *Reader) Transporters(ctx context.Context) ([]TransporterRow, error) {
	values, err := r.readTab(ctx, r.cfg.TranspSheet, "A:G")
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var out []TransporterRow
	for _, raw := range values {
		cols := toStrings(raw)
		code := colAt(cols, 0)
		if code == "" || isHeader(code, "code") {
			continue
		}
		i, ok := index[code]
		if !ok {
			out = append(out, TransporterRow{
				Code:       code,
				Name:       colAt(cols, 1),
				Contractor: colAt(cols, 2),
				RatePerCbm: parseFloat(colAt(cols, 3)),
				Status:     colAt(cols, 6),
			})
			i = len(out) - 1
			index[code] = i
		}
		plate := colAt(cols, 4)
		if plate != "" {
			out[i].Trucks = append(out[i].Trucks, TruckRow{
				PlateNumber: plate,
				CapacityCbm: parseFloat(colAt(cols, 5)),
			})
		}
	}
	return out, nil
}

func (r *Reader) Trips(ctx context.Context) ([]TripRow, error) {
	values, err := r.readTab(ctx, r.cfg.TripsSheet, "A:J")
	if err != nil {
		return nil, err
	}
	var out []TripRow
	for _, raw := range values {
		cols := toStrings(raw)
		date := colAt(cols, 0)
		if date == "" || isHeader(date, "date") {
			continue
		}
		out = append(out, TripRow{
			Date:            date,
			DredgerCode:     colAt(cols, 1),
			TransporterCode: colAt(cols, 2),
			PlateNumber:     colAt(cols, 3),
			Trips:           parseInt(colAt(cols, 4)),
			CapacityCbm:     parseFloat(colAt(cols, 5)),
			DredgerRate:     parseFloat(colAt(cols, 6)),
			TransporterRate: parseFloat(colAt(cols, 7)),
			DumpingLocation: colAt(cols, 8),
			Notes:           colAt(cols, 9),
		})
	}
	return out, nil
}

func (r *Reader) Payments(ctx context.Context) ([]PaymentRow, error) {
	values, err := r.readTab(ctx, r.cfg.PaymentsSheet, "A:G")
	if err != nil {
		return nil, err
	}
	var out []PaymentRow
	for _, raw := range values {
		cols := toStrings(raw)
		date := colAt(cols, 0)
		if date == "" || isHeader(date, "date") {
			continue
		}
		out = append(out, PaymentRow{
			Date:          date,
			EntityType:    strings.ToLower(colAt(cols, 1)),
			EntityCode:    colAt(cols, 2),
			Amount:        parseFloat(colAt(cols, 3)),
			PaymentMethod: colAt(cols, 4),
			Reference:     colAt(cols, 5),
			Notes:         colAt(cols, 6),
		})
	}
	return out, nil
}

func (r *Reader) readTab(ctx context.Context, tab, columns string) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!%s", tab, columns)
	resp, err := r.svc.Spreadsheets.Values.Get(r.cfg.SpreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", rng, err)
	}
	return resp.Values, nil
}
