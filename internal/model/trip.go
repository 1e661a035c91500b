package model

import (
	"time"

	"github.com/google/uuid"
)

// Trip is one day's haulage record for a dredger/transporter/truck triple.
// CapacityCbm, TotalVolume, DredgerRate and TransporterRate are snapshots
// taken when the record is written; they are never recomputed from the
// current truck or entity, so historical earnings survive rate changes.
type Trip struct {
	ID              uuid.UUID  `json:"id"`
	Date            string     `json:"date"`
	DredgerID       uuid.UUID  `json:"dredger_id"`
	TransporterID   uuid.UUID  `json:"transporter_id"`
	TruckID         *uuid.UUID `json:"truck_id"`
	PlateNumber     string     `json:"plate_number"`
	Trips           int        `json:"trips"`
	CapacityCbm     float64    `json:"capacity_cbm"`
	TotalVolume     float64    `json:"total_volume"`
	DredgerRate     float64    `json:"dredger_rate"`
	TransporterRate float64    `json:"transporter_rate"`
	DumpingLocation string     `json:"dumping_location"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}
