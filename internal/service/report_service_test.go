package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinna/dredgeops/internal/model"
)

func TestBuildProjectReportBoundedRangeFiltersSummary(t *testing.T) {
	dredgerID := uuid.New()
	transporterID := uuid.New()
	dredgers := []model.Dredger{{ID: dredgerID, Code: "DRG-01", RatePerCbm: 1500}}
	transporters := []model.Transporter{{ID: transporterID, Code: "TRN-01", RatePerCbm: 850}}

	trips := []model.Trip{
		{
			Date: "2026-01-10", DredgerID: dredgerID, TransporterID: transporterID,
			Trips: 5, CapacityCbm: 15, TotalVolume: 75,
			DredgerRate: 1500, TransporterRate: 850, DumpingLocation: "Site A",
		},
		{
			Date: "2026-02-05", DredgerID: dredgerID, TransporterID: transporterID,
			Trips: 4, CapacityCbm: 15, TotalVolume: 60,
			DredgerRate: 1500, TransporterRate: 850, DumpingLocation: "Site B",
		},
	}
	payments := []model.Payment{
		{Date: "2026-01-20", EntityType: model.EntityKindDredger, EntityID: dredgerID, Amount: 50000},
		{Date: "2026-02-10", EntityType: model.EntityKindDredger, EntityID: dredgerID, Amount: 30000},
	}

	report := buildProjectReport(dredgers, transporters, trips, payments, "2026-01-01", "2026-01-31")

	assert.Equal(t, 75.0, report.Summary.TotalVolume)
	assert.Equal(t, 5, report.Summary.TotalTrips)
	assert.Equal(t, 75.0*1500, report.Summary.TotalDredgerCost)
	assert.Equal(t, 75.0*850, report.Summary.TotalTransporterCost)
	assert.Equal(t, 50000.0, report.Summary.TotalPaid)

	require.Len(t, report.Dredgers, 1)
	require.Len(t, report.Transporters, 1)

	// The summary sheet must equal the sum of the rows beside it.
	assert.Equal(t, report.Summary.TotalVolume, report.Dredgers[0].Summary.TotalVolume)
	assert.Equal(t, report.Summary.TotalDredgerCost, report.Dredgers[0].Summary.TotalAmount)
	assert.Equal(t, report.Summary.TotalTransporterCost, report.Transporters[0].Summary.TotalAmount)

	require.Len(t, report.Locations, 1)
	assert.Equal(t, "Site A", report.Locations[0].Location)
}

func TestBuildProjectReportUnboundedCoversEverything(t *testing.T) {
	dredgerID := uuid.New()
	trips := []model.Trip{
		{Date: "2026-01-10", DredgerID: dredgerID, Trips: 5, TotalVolume: 75, DredgerRate: 1500},
		{Date: "2026-02-05", DredgerID: dredgerID, Trips: 4, TotalVolume: 60, DredgerRate: 1500},
	}
	payments := []model.Payment{
		{Date: "2026-01-20", EntityType: model.EntityKindDredger, EntityID: dredgerID, Amount: 50000},
	}

	report := buildProjectReport(nil, nil, trips, payments, "", "")

	assert.Equal(t, 135.0, report.Summary.TotalVolume)
	assert.Equal(t, 9, report.Summary.TotalTrips)
	assert.Equal(t, 50000.0, report.Summary.TotalPaid)
	assert.Empty(t, report.DateFrom)
	assert.Empty(t, report.DateTo)
}
