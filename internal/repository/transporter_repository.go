package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/model"
)

type TransporterRepository struct {
	db *gorm.DB
}

func NewTransporterRepository(db *gorm.DB) *TransporterRepository {
	return &TransporterRepository{db: db}
}

// List returns every transporter with its trucks attached, trucks ordered
// by plate number.
func (r *TransporterRepository) List(ctx context.Context) ([]model.Transporter, error) {
	var transporters []model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM transporters
		ORDER BY code ASC
	`).Scan(&transporters).Error
	if err != nil {
		return nil, err
	}
	if len(transporters) == 0 {
		return transporters, nil
	}

	ids := make([]uuid.UUID, 0, len(transporters))
	for _, t := range transporters {
		ids = append(ids, t.ID)
	}

	var trucks []model.Truck
	err = r.db.WithContext(ctx).Raw(`
		SELECT id, transporter_id, name, plate_number, capacity_cbm, status
		FROM trucks
		WHERE transporter_id = ANY(?)
		ORDER BY plate_number ASC
	`, ids).Scan(&trucks).Error
	if err != nil {
		return nil, err
	}

	byTransporter := make(map[uuid.UUID][]model.Truck, len(transporters))
	for _, truck := range trucks {
		byTransporter[truck.TransporterID] = append(byTransporter[truck.TransporterID], truck)
	}
	for i := range transporters {
		transporters[i].Trucks = byTransporter[transporters[i].ID]
	}
	return transporters, nil
}

func (r *TransporterRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transporter, error) {
	var transporter model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM transporters
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&transporter).Error
	if err != nil {
		return nil, err
	}
	if transporter.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT id, transporter_id, name, plate_number, capacity_cbm, status
		FROM trucks
		WHERE transporter_id = ?
		ORDER BY plate_number ASC
	`, id).Scan(&transporter.Trucks).Error
	if err != nil {
		return nil, err
	}
	return &transporter, nil
}

func (r *TransporterRepository) Create(ctx context.Context, t model.Transporter) (*model.Transporter, error) {
	var saved model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO transporters (code, name, rate_per_cbm, status, contractor, contract_number)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
	`, t.Code, t.Name, t.RatePerCbm, t.Status, t.Contractor, t.ContractNumber).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TransporterRepository) Update(ctx context.Context, t model.Transporter) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE transporters
		SET code = ?, name = ?, rate_per_cbm = ?, status = ?, contractor = ?, contract_number = ?
		WHERE id = ?
	`, t.Code, t.Name, t.RatePerCbm, t.Status, t.Contractor, t.ContractNumber, t.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the transporter; its trucks go with it (FK cascade).
// Trip history keeps its own plate and capacity snapshots.
func (r *TransporterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM transporters WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransporterRepository) AddTruck(ctx context.Context, truck model.Truck) (*model.Truck, error) {
	var saved model.Truck
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO trucks (transporter_id, name, plate_number, capacity_cbm, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, transporter_id, name, plate_number, capacity_cbm, status
	`, truck.TransporterID, truck.Name, truck.PlateNumber, truck.CapacityCbm, truck.Status).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TransporterRepository) GetTruck(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	var truck model.Truck
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, transporter_id, name, plate_number, capacity_cbm, status
		FROM trucks
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&truck).Error
	if err != nil {
		return nil, err
	}
	if truck.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &truck, nil
}

func (r *TransporterRepository) DeleteTruck(ctx context.Context, transporterID, truckID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM trucks WHERE id = ? AND transporter_id = ?
	`, truckID, transporterID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransporterRepository) UpsertByCode(ctx context.Context, t model.Transporter) (*model.Transporter, error) {
	var saved model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO transporters (code, name, rate_per_cbm, status, contractor, contract_number)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			rate_per_cbm = EXCLUDED.rate_per_cbm,
			status = EXCLUDED.status,
			contractor = EXCLUDED.contractor,
			contract_number = EXCLUDED.contract_number
		RETURNING id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
	`, t.Code, t.Name, t.RatePerCbm, t.Status, t.Contractor, t.ContractNumber).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TransporterRepository) UpsertTruck(ctx context.Context, truck model.Truck) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO trucks (transporter_id, name, plate_number, capacity_cbm, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (transporter_id, plate_number) DO UPDATE SET
			name = EXCLUDED.name,
			capacity_cbm = EXCLUDED.capacity_cbm,
			status = EXCLUDED.status
	`, truck.TransporterID, truck.Name, truck.PlateNumber, truck.CapacityCbm, truck.Status).Error
}

func (r *TransporterRepository) GetByCode(ctx context.Context, code string) (*model.Transporter, error) {
	var transporter model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM transporters
		WHERE code = ?
		LIMIT 1
	`, code).Scan(&transporter).Error
	if err != nil {
		return nil, err
	}
	if transporter.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &transporter, nil
}

// FindTruckByPlate resolves a plate number within one transporter's fleet,
// for trip rows that arrive with only the plate string.
func (r *TransporterRepository) FindTruckByPlate(ctx context.Context, transporterID uuid.UUID, plate string) (*model.Truck, error) {
	var truck model.Truck
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, transporter_id, name, plate_number, capacity_cbm, status
		FROM trucks
		WHERE transporter_id = ? AND plate_number = ?
		LIMIT 1
	`, transporterID, plate).Scan(&truck).Error
	if err != nil {
		return nil, err
	}
	if truck.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &truck, nil
}
