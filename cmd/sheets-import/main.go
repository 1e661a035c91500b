// Command sheets-import migrates the legacy operations spreadsheet into the
// database. It is idempotent for dredgers, transporters and trucks (matched
// by code and plate number); trips and payments are appended, so run it once
// against an empty trip log.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/config"
	"github.com/obinna/dredgeops/internal/db"
	"github.com/obinna/dredgeops/internal/logger"
	"github.com/obinna/dredgeops/internal/model"
	"github.com/obinna/dredgeops/internal/repository"
	"github.com/obinna/dredgeops/internal/sheets"
	"github.com/obinna/dredgeops/internal/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	ctx := context.Background()

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	reader, err := sheets.NewReader(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init sheets reader")
	}

	importer := &importer{
		dredgers:     repository.NewDredgerRepository(database),
		transporters: repository.NewTransporterRepository(database),
		trips:        repository.NewTripRepository(database),
		payments:     repository.NewPaymentRepository(database),
		reader:       reader,
		log:          log,
	}

	if err := importer.run(ctx); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Msg("import finished")
}

type importer struct {
	dredgers     *repository.DredgerRepository
	transporters *repository.TransporterRepository
	trips        *repository.TripRepository
	payments     *repository.PaymentRepository
	reader       *sheets.Reader
	log          zerolog.Logger
}

func (im *importer) run(ctx context.Context) error {
	if err := im.importDredgers(ctx); err != nil {
		return fmt.Errorf("dredgers: %w", err)
	}
	if err := im.importTransporters(ctx); err != nil {
		return fmt.Errorf("transporters: %w", err)
	}
	if err := im.importTrips(ctx); err != nil {
		return fmt.Errorf("trips: %w", err)
	}
	if err := im.importPayments(ctx); err != nil {
		return fmt.Errorf("payments: %w", err)
	}
	return nil
}

func (im *importer) importDredgers(ctx context.Context) error {
	rows, err := im.reader.Dredgers(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		err := im.dredgers.UpsertByCode(ctx, model.Dredger{
			Code:       row.Code,
			Name:       row.Name,
			Contractor: row.Contractor,
			RatePerCbm: row.RatePerCbm,
			Status:     parseStatus(row.Status),
		})
		if err != nil {
			return fmt.Errorf("upsert %s: %w", row.Code, err)
		}
	}
	im.log.Info().Int("count", len(rows)).Msg("imported dredgers")
	return nil
}

func (im *importer) importTransporters(ctx context.Context) error {
	rows, err := im.reader.Transporters(ctx)
	if err != nil {
		return err
	}
	truckCount := 0
	for _, row := range rows {
		transporter, err := im.transporters.UpsertByCode(ctx, model.Transporter{
			Code:       row.Code,
			Name:       row.Name,
			Contractor: row.Contractor,
			RatePerCbm: row.RatePerCbm,
			Status:     parseStatus(row.Status),
		})
		if err != nil {
			return fmt.Errorf("upsert %s: %w", row.Code, err)
		}
		for _, truck := range row.Trucks {
			err := im.transporters.UpsertTruck(ctx, model.Truck{
				TransporterID: transporter.ID,
				PlateNumber:   truck.PlateNumber,
				CapacityCbm:   truck.CapacityCbm,
				Status:        model.EntityStatusActive,
			})
			if err != nil {
				return fmt.Errorf("upsert truck %s/%s: %w", row.Code, truck.PlateNumber, err)
			}
			truckCount++
		}
	}
	im.log.Info().Int("count", len(rows)).Int("trucks", truckCount).Msg("imported transporters")
	return nil
}

// importTrips keeps the rates and capacities stored in the sheet: they are
// the write-time snapshots, not something to recompute from the current
// registry.
func (im *importer) importTrips(ctx context.Context) error {
	rows, err := im.reader.Trips(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		trip := model.Trip{
			Date:            summary.NormalizeDate(row.Date),
			PlateNumber:     row.PlateNumber,
			Trips:           row.Trips,
			CapacityCbm:     row.CapacityCbm,
			TotalVolume:     float64(row.Trips) * row.CapacityCbm,
			DredgerRate:     row.DredgerRate,
			TransporterRate: row.TransporterRate,
			DumpingLocation: row.DumpingLocation,
			Notes:           row.Notes,
		}

		if row.DredgerCode != "" {
			dredger, err := im.dredgers.GetByCode(ctx, row.DredgerCode)
			switch {
			case err == nil:
				trip.DredgerID = dredger.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				im.log.Warn().Str("code", row.DredgerCode).Str("date", row.Date).Msg("trip references unknown dredger")
			default:
				return err
			}
		}
		if row.TransporterCode != "" {
			transporter, err := im.transporters.GetByCode(ctx, row.TransporterCode)
			switch {
			case err == nil:
				trip.TransporterID = transporter.ID
				if row.PlateNumber != "" {
					truck, err := im.transporters.FindTruckByPlate(ctx, transporter.ID, row.PlateNumber)
					if err == nil {
						trip.TruckID = &truck.ID
					} else if !errors.Is(err, gorm.ErrRecordNotFound) {
						return err
					}
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				im.log.Warn().Str("code", row.TransporterCode).Str("date", row.Date).Msg("trip references unknown transporter")
			default:
				return err
			}
		}

		if _, err := im.trips.Create(ctx, trip); err != nil {
			return fmt.Errorf("create trip %s/%s: %w", row.Date, row.PlateNumber, err)
		}
	}
	im.log.Info().Int("count", len(rows)).Msg("imported trips")
	return nil
}

func (im *importer) importPayments(ctx context.Context) error {
	rows, err := im.reader.Payments(ctx)
	if err != nil {
		return err
	}
	imported := 0
	for _, row := range rows {
		kind := model.EntityKind(row.EntityType)
		if kind != model.EntityKindDredger && kind != model.EntityKindTransporter {
			im.log.Warn().Str("entity_type", row.EntityType).Str("date", row.Date).Msg("skipping payment with unknown entity type")
			continue
		}

		payment := model.Payment{
			Date:          summary.NormalizeDate(row.Date),
			EntityType:    kind,
			Amount:        row.Amount,
			PaymentMethod: row.PaymentMethod,
			Reference:     row.Reference,
			Notes:         row.Notes,
		}
		if payment.PaymentMethod == "" {
			payment.PaymentMethod = "Bank Transfer"
		}

		// An unresolved code is not fatal, same as for trips: the payment
		// still counts toward project totals, just with no entity reference.
		switch kind {
		case model.EntityKindDredger:
			dredger, err := im.dredgers.GetByCode(ctx, row.EntityCode)
			switch {
			case err == nil:
				payment.EntityID = dredger.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				im.log.Warn().Str("code", row.EntityCode).Str("date", row.Date).Msg("payment references unknown dredger")
			default:
				return err
			}
		case model.EntityKindTransporter:
			transporter, err := im.transporters.GetByCode(ctx, row.EntityCode)
			switch {
			case err == nil:
				payment.EntityID = transporter.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				im.log.Warn().Str("code", row.EntityCode).Str("date", row.Date).Msg("payment references unknown transporter")
			default:
				return err
			}
		}

		if _, err := im.payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment %s/%s: %w", row.Date, row.EntityCode, err)
		}
		imported++
	}
	im.log.Info().Int("count", imported).Msg("imported payments")
	return nil
}

func parseStatus(raw string) model.EntityStatus {
	if strings.EqualFold(strings.TrimSpace(raw), string(model.EntityStatusInactive)) {
		return model.EntityStatusInactive
	}
	return model.EntityStatusActive
}
