package model

import "github.com/google/uuid"

// EntitySummary is the per-entity reconciliation result: volume moved,
// amount billed at the trip-snapshot rate, amount paid, and the running
// balance. A positive balance means the entity is still owed money.
type EntitySummary struct {
	EntityKind      EntityKind `json:"entity_kind"`
	EntityID        uuid.UUID  `json:"entity_id"`
	TotalVolume     float64    `json:"total_volume"`
	TotalTripsCount int        `json:"total_trips_count,omitempty"`
	TotalAmount     float64    `json:"total_amount"`
	TotalPaid       float64    `json:"total_paid"`
	Balance         float64    `json:"balance"`
}

// Due reports whether the entity is still owed money.
func (s EntitySummary) Due() bool {
	return s.Balance > 0
}

type ProjectSummary struct {
	TotalVolume          float64 `json:"total_volume"`
	TotalTrips           int     `json:"total_trips"`
	TotalDredgerCost     float64 `json:"total_dredger_cost"`
	TotalTransporterCost float64 `json:"total_transporter_cost"`
	TotalPaid            float64 `json:"total_paid"`
	OutstandingBalance   float64 `json:"outstanding_balance"`
}

type LocationSummary struct {
	Location    string  `json:"location"`
	TotalVolume float64 `json:"total_volume"`
	TripCount   int     `json:"trip_count"`
}

// EntityStatement bundles everything the PDF statement needs for one entity.
type EntityStatement struct {
	Kind     EntityKind
	Code     string
	Name     string
	Summary  EntitySummary
	Trips    []Trip
	Payments []Payment
	DateFrom string
	DateTo   string
}
