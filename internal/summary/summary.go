// Package summary is the reconciliation engine: pure functions that turn
// trip and payment records into per-entity and project-wide financial
// summaries. Amounts are always computed from the rates snapshotted on the
// trip, never from an entity's current rate. Nothing here mutates its
// inputs or touches I/O, so concurrent callers need no locking.
package summary

import (
	"github.com/google/uuid"

	"github.com/obinna/dredgeops/internal/model"
)

// Entity computes the earnings summary for one dredger or transporter.
// The optional date range (inclusive on both ends, empty string means
// unbounded) applies to trips and payments alike. An unknown entity id
// yields a zero-valued summary, not an error.
func Entity(
	kind model.EntityKind,
	entityID uuid.UUID,
	trips []model.Trip,
	payments []model.Payment,
	dateFrom, dateTo string,
) model.EntitySummary {
	s := model.EntitySummary{EntityKind: kind, EntityID: entityID}

	for _, t := range trips {
		if tripEntityID(kind, t) != entityID {
			continue
		}
		if !InRange(t.Date, dateFrom, dateTo) {
			continue
		}
		s.TotalVolume += t.TotalVolume
		s.TotalAmount += t.TotalVolume * tripRate(kind, t)
		if kind == model.EntityKindTransporter {
			s.TotalTripsCount += t.Trips
		}
	}

	for _, p := range payments {
		if p.EntityType != kind || p.EntityID != entityID {
			continue
		}
		if !InRange(p.Date, dateFrom, dateTo) {
			continue
		}
		s.TotalPaid += p.Amount
	}

	s.Balance = s.TotalAmount - s.TotalPaid
	return s
}

// Project computes whole-project totals over every trip and payment,
// including records whose entity references no longer resolve.
func Project(trips []model.Trip, payments []model.Payment) model.ProjectSummary {
	var s model.ProjectSummary
	for _, t := range trips {
		s.TotalVolume += t.TotalVolume
		s.TotalTrips += t.Trips
		s.TotalDredgerCost += t.TotalVolume * t.DredgerRate
		s.TotalTransporterCost += t.TotalVolume * t.TransporterRate
	}
	for _, p := range payments {
		s.TotalPaid += p.Amount
	}
	s.OutstandingBalance = s.TotalDredgerCost + s.TotalTransporterCost - s.TotalPaid
	return s
}

// Locations groups trips by dumping location (exact, case-sensitive match)
// within the optional date range. The result order is unspecified; callers
// sort for presentation.
func Locations(trips []model.Trip, dateFrom, dateTo string) []model.LocationSummary {
	index := make(map[string]int)
	result := make([]model.LocationSummary, 0)

	for _, t := range trips {
		if !InRange(t.Date, dateFrom, dateTo) {
			continue
		}
		pos, ok := index[t.DumpingLocation]
		if !ok {
			result = append(result, model.LocationSummary{Location: t.DumpingLocation})
			pos = len(result) - 1
			index[t.DumpingLocation] = pos
		}
		result[pos].TotalVolume += t.TotalVolume
		result[pos].TripCount += t.Trips
	}
	return result
}

func tripEntityID(kind model.EntityKind, t model.Trip) uuid.UUID {
	if kind == model.EntityKindDredger {
		return t.DredgerID
	}
	return t.TransporterID
}

func tripRate(kind model.EntityKind, t model.Trip) float64 {
	if kind == model.EntityKindDredger {
		return t.DredgerRate
	}
	return t.TransporterRate
}
