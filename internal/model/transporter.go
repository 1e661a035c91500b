package model

import (
	"time"

	"github.com/google/uuid"
)

type Truck struct {
	ID            uuid.UUID    `json:"id"`
	TransporterID uuid.UUID    `json:"transporter_id"`
	Name          string       `json:"name"`
	PlateNumber   string       `json:"plate_number"`
	CapacityCbm   float64      `json:"capacity_cbm"`
	Status        EntityStatus `json:"status"`
}

type Transporter struct {
	ID             uuid.UUID    `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	RatePerCbm     float64      `json:"rate_per_cbm"`
	Status         EntityStatus `json:"status"`
	Contractor     string       `json:"contractor"`
	ContractNumber string       `json:"contract_number"`
	CreatedAt      time.Time    `json:"created_at"`
	Trucks         []Truck      `json:"trucks" gorm:"-"`
}
