package model

import (
	"time"

	"github.com/google/uuid"
)

type EntityKind string

const (
	EntityKindDredger     EntityKind = "dredger"
	EntityKindTransporter EntityKind = "transporter"
)

type Payment struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	EntityType    EntityKind `json:"entity_type"`
	EntityID      uuid.UUID  `json:"entity_id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	Reference     string     `json:"reference"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}
