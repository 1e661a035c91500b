package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/model"
)

type DredgerRepository struct {
	db *gorm.DB
}

func NewDredgerRepository(db *gorm.DB) *DredgerRepository {
	return &DredgerRepository{db: db}
}

func (r *DredgerRepository) List(ctx context.Context) ([]model.Dredger, error) {
	var dredgers []model.Dredger
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM dredgers
		ORDER BY code ASC
	`).Scan(&dredgers).Error
	if err != nil {
		return nil, err
	}
	return dredgers, nil
}

func (r *DredgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Dredger, error) {
	var dredger model.Dredger
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM dredgers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&dredger).Error
	if err != nil {
		return nil, err
	}
	if dredger.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &dredger, nil
}

func (r *DredgerRepository) Create(ctx context.Context, d model.Dredger) (*model.Dredger, error) {
	var saved model.Dredger
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO dredgers (code, name, rate_per_cbm, status, contractor, contract_number)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
	`, d.Code, d.Name, d.RatePerCbm, d.Status, d.Contractor, d.ContractNumber).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DredgerRepository) Update(ctx context.Context, d model.Dredger) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE dredgers
		SET code = ?, name = ?, rate_per_cbm = ?, status = ?, contractor = ?, contract_number = ?
		WHERE id = ?
	`, d.Code, d.Name, d.RatePerCbm, d.Status, d.Contractor, d.ContractNumber, d.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DredgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM dredgers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertByCode keeps the spreadsheet importer idempotent: the business code
// is the identity the workbook knows, not the row uuid.
func (r *DredgerRepository) UpsertByCode(ctx context.Context, d model.Dredger) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO dredgers (code, name, rate_per_cbm, status, contractor, contract_number)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			rate_per_cbm = EXCLUDED.rate_per_cbm,
			status = EXCLUDED.status,
			contractor = EXCLUDED.contractor,
			contract_number = EXCLUDED.contract_number
	`, d.Code, d.Name, d.RatePerCbm, d.Status, d.Contractor, d.ContractNumber).Error
}

func (r *DredgerRepository) GetByCode(ctx context.Context, code string) (*model.Dredger, error) {
	var dredger model.Dredger
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, code, name, rate_per_cbm, status, contractor, contract_number, created_at
		FROM dredgers
		WHERE code = ?
		LIMIT 1
	`, code).Scan(&dredger).Error
	if err != nil {
		return nil, err
	}
	if dredger.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &dredger, nil
}
