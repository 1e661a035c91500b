package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/model"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `
	id, date, entity_type, entity_id, amount, payment_method, reference,
	notes, created_at
`

func (r *PaymentRepository) List(ctx context.Context, dateFrom, dateTo string) ([]model.Payment, error) {
	baseQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
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

	var payments []model.Payment
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) (*model.Payment, error) {
	var saved model.Payment
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO payments (date, entity_type, entity_id, amount, payment_method, reference, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+paymentColumns+`
	`, p.Date, p.EntityType, p.EntityID, p.Amount, p.PaymentMethod, p.Reference, p.Notes).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PaymentRepository) Replace(ctx context.Context, p model.Payment) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE payments
		SET date = ?, entity_type = ?, entity_id = ?, amount = ?,
			payment_method = ?, reference = ?, notes = ?
		WHERE id = ?
	`, p.Date, p.EntityType, p.EntityID, p.Amount, p.PaymentMethod, p.Reference, p.Notes, p.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM payments WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
