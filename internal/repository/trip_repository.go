package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `
	id, date, dredger_id, transporter_id, truck_id, plate_number, trips,
	capacity_cbm, total_volume, dredger_rate, transporter_rate,
	dumping_location, notes, created_at
`

// List returns the trip log, optionally bounded by normalized dates
// (inclusive). Empty bounds are open.
func (r *TripRepository) List(ctx context.Context, dateFrom, dateTo string) ([]model.Trip, error) {
	baseQuery := `SELECT ` + tripColumns + ` FROM trips WHERE 1=1`
	args := []interface{}{}
	if dateFrom != "" {
		baseQuery += " AND date >= ?"
		args = append(args, dateFrom)
	}
	if dateTo != "" {
		baseQuery += " AND date <= ?"
		args = append(args, dateTo)
	}
	baseQuery += " ORDER BY date ASC, created_at ASC"

	var trips []model.Trip
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&trip).Error
	if err != nil {
		return nil, err
	}
	if trip.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, t model.Trip) (*model.Trip, error) {
	var saved model.Trip
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO trips (
			date, dredger_id, transporter_id, truck_id, plate_number, trips,
			capacity_cbm, total_volume, dredger_rate, transporter_rate,
			dumping_location, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+tripColumns+`
	`,
		t.Date, t.DredgerID, t.TransporterID, t.TruckID, t.PlateNumber, t.Trips,
		t.CapacityCbm, t.TotalVolume, t.DredgerRate, t.TransporterRate,
		t.DumpingLocation, t.Notes,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Replace overwrites every field of an existing trip. Trips are never
// partially mutated; an edit is a full replacement with fresh snapshots.
func (r *TripRepository) Replace(ctx context.Context, t model.Trip) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE trips
		SET date = ?, dredger_id = ?, transporter_id = ?, truck_id = ?,
			plate_number = ?, trips = ?, capacity_cbm = ?, total_volume = ?,
			dredger_rate = ?, transporter_rate = ?, dumping_location = ?, notes = ?
		WHERE id = ?
	`,
		t.Date, t.DredgerID, t.TransporterID, t.TruckID,
		t.PlateNumber, t.Trips, t.CapacityCbm, t.TotalVolume,
		t.DredgerRate, t.TransporterRate, t.DumpingLocation, t.Notes,
		t.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM trips WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
