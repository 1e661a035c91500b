package model

import (
	"time"

	"github.com/google/uuid"
)

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusInactive EntityStatus = "inactive"
)

type Dredger struct {
	ID             uuid.UUID    `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	RatePerCbm     float64      `json:"rate_per_cbm"`
	Status         EntityStatus `json:"status"`
	Contractor     string       `json:"contractor"`
	ContractNumber string       `json:"contract_number"`
	CreatedAt      time.Time    `json:"created_at"`
}
