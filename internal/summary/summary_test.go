package summary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinna/dredgeops/internal/model"
)

var (
	dredger1     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	dredger2     = uuid.MustParse("11111111-1111-1111-1111-222222222222")
	transporter1 = uuid.MustParse("22222222-2222-2222-2222-111111111111")
	transporter2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func makeTrip(date string, dredgerID, transporterID uuid.UUID, trips int, capacity, dredgerRate, transporterRate float64, location string) model.Trip {
	return model.Trip{
		ID:              uuid.New(),
		Date:            date,
		DredgerID:       dredgerID,
		TransporterID:   transporterID,
		Trips:           trips,
		CapacityCbm:     capacity,
		TotalVolume:     float64(trips) * capacity,
		DredgerRate:     dredgerRate,
		TransporterRate: transporterRate,
		DumpingLocation: location,
	}
}

func TestEntity_DredgerScenario(t *testing.T) {
	// Dredger rate 1500, truck capacity 15 CBM, 5 runs on 2024-01-15.
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A - North"),
	}
	payments := []model.Payment{
		{ID: uuid.New(), Date: "2024-01-20", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 50000},
	}

	got := Entity(model.EntityKindDredger, dredger1, trips, payments, "", "")

	assert.Equal(t, 75.0, got.TotalVolume)
	assert.Equal(t, 112500.0, got.TotalAmount)
	assert.Equal(t, 50000.0, got.TotalPaid)
	assert.Equal(t, 62500.0, got.Balance)
	assert.True(t, got.Due())
	assert.Zero(t, got.TotalTripsCount, "trips count is a transporter-only field")
}

func TestEntity_TransporterTwoTrucks(t *testing.T) {
	// Same transporter, two trucks: capacities 15 and 18, runs 5 and 6.
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A - North"),
		makeTrip("2024-01-15", dredger1, transporter1, 6, 18, 1500, 850, "Site A - South"),
	}

	got := Entity(model.EntityKindTransporter, transporter1, trips, nil, "", "")

	assert.Equal(t, 11, got.TotalTripsCount)
	assert.Equal(t, 183.0, got.TotalVolume)
	assert.Equal(t, 183*850.0, got.TotalAmount)
	assert.Equal(t, got.TotalAmount, got.Balance)
}

func TestEntity_UsesSnapshotRateNotCurrentRate(t *testing.T) {
	// The trip was recorded at rate 1500. Whatever the dredger's rate is
	// today must not change the amount for the recorded trip.
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, ""),
	}

	before := Entity(model.EntityKindDredger, dredger1, trips, nil, "", "")

	// A later trip at the new rate 2000 adds at the new rate only.
	trips = append(trips, makeTrip("2024-02-01", dredger1, transporter1, 2, 15, 2000, 850, ""))
	after := Entity(model.EntityKindDredger, dredger1, trips, nil, "", "")

	assert.Equal(t, 112500.0, before.TotalAmount)
	assert.Equal(t, 112500.0+30*2000, after.TotalAmount)
}

func TestEntity_UnknownEntityIsZeroSummary(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, ""),
	}

	got := Entity(model.EntityKindDredger, uuid.New(), trips, nil, "", "")

	assert.Zero(t, got.TotalVolume)
	assert.Zero(t, got.TotalAmount)
	assert.Zero(t, got.TotalPaid)
	assert.Zero(t, got.Balance)
	assert.False(t, got.Due())
}

func TestEntity_DateRangeInclusive(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-14", dredger1, transporter1, 1, 10, 1000, 500, ""),
		makeTrip("2024-01-15", dredger1, transporter1, 1, 10, 1000, 500, ""),
		makeTrip("2024-01-20", dredger1, transporter1, 1, 10, 1000, 500, ""),
		makeTrip("2024-01-21", dredger1, transporter1, 1, 10, 1000, 500, ""),
	}

	got := Entity(model.EntityKindDredger, dredger1, trips, nil, "2024-01-15", "2024-01-20")

	// Exactly-on-bound trips are in, one-day-outside trips are out.
	assert.Equal(t, 20.0, got.TotalVolume)
}

func TestEntity_DateRangeAppliesToPaymentsToo(t *testing.T) {
	payments := []model.Payment{
		{ID: uuid.New(), Date: "2024-01-10", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 1000},
		{ID: uuid.New(), Date: "2024-01-15", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 2000},
		{ID: uuid.New(), Date: "2024-02-01", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 4000},
	}

	got := Entity(model.EntityKindDredger, dredger1, nil, payments, "2024-01-15", "2024-01-31")

	assert.Equal(t, 2000.0, got.TotalPaid)
}

func TestEntity_PaymentKindMismatchExcluded(t *testing.T) {
	// A transporter payment that happens to share the dredger's id must not
	// count towards the dredger.
	payments := []model.Payment{
		{ID: uuid.New(), Date: "2024-01-15", EntityType: model.EntityKindTransporter, EntityID: dredger1, Amount: 9999},
	}

	got := Entity(model.EntityKindDredger, dredger1, nil, payments, "", "")

	assert.Zero(t, got.TotalPaid)
}

func TestEntity_MixedDateFormats(t *testing.T) {
	trips := []model.Trip{
		makeTrip("15/01/2024", dredger1, transporter1, 1, 10, 1000, 500, ""),
		makeTrip("16-01-2024", dredger1, transporter1, 1, 10, 1000, 500, ""),
		makeTrip("2024-01-17", dredger1, transporter1, 1, 10, 1000, 500, ""),
	}

	got := Entity(model.EntityKindDredger, dredger1, trips, nil, "2024-01-15", "2024-01-16")

	assert.Equal(t, 20.0, got.TotalVolume)
}

func TestProject_Scenario(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A - North"),
	}
	payments := []model.Payment{
		{ID: uuid.New(), Date: "2024-01-20", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 50000},
	}

	got := Project(trips, payments)

	assert.Equal(t, 75.0, got.TotalVolume)
	assert.Equal(t, 5, got.TotalTrips)
	assert.Equal(t, 112500.0, got.TotalDredgerCost)
	assert.Equal(t, 63750.0, got.TotalTransporterCost)
	assert.Equal(t, 50000.0, got.TotalPaid)
	assert.Equal(t, 126250.0, got.OutstandingBalance)
}

func TestProject_VolumeAdditivity(t *testing.T) {
	// Project volume equals the sum of per-dredger volumes and equally the
	// sum of per-transporter volumes: each trip counted exactly once under
	// either grouping.
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "A"),
		makeTrip("2024-01-16", dredger1, transporter2, 3, 18, 1500, 900, "B"),
		makeTrip("2024-01-17", dredger2, transporter1, 4, 12, 1600, 850, "A"),
		makeTrip("2024-01-18", dredger2, transporter2, 7, 20, 1600, 900, "C"),
	}

	project := Project(trips, nil)

	var byDredger, byTransporter float64
	for _, id := range []uuid.UUID{dredger1, dredger2} {
		byDredger += Entity(model.EntityKindDredger, id, trips, nil, "", "").TotalVolume
	}
	for _, id := range []uuid.UUID{transporter1, transporter2} {
		byTransporter += Entity(model.EntityKindTransporter, id, trips, nil, "", "").TotalVolume
	}

	assert.Equal(t, project.TotalVolume, byDredger)
	assert.Equal(t, project.TotalVolume, byTransporter)
}

func TestProject_CountsUnresolvedReferences(t *testing.T) {
	// A trip whose dredger id matches nothing still contributes its stored
	// snapshot values to the project totals.
	orphan := makeTrip("2024-01-15", uuid.New(), uuid.New(), 2, 10, 1200, 700, "X")

	// Same for a payment carrying no entity reference, as the spreadsheet
	// importer records when a code no longer resolves.
	orphanPayment := model.Payment{
		Date:       "2024-01-20",
		EntityType: model.EntityKindDredger,
		EntityID:   uuid.Nil,
		Amount:     5000,
	}

	got := Project([]model.Trip{orphan}, []model.Payment{orphanPayment})

	assert.Equal(t, 20.0, got.TotalVolume)
	assert.Equal(t, 24000.0, got.TotalDredgerCost)
	assert.Equal(t, 14000.0, got.TotalTransporterCost)
	assert.Equal(t, 5000.0, got.TotalPaid)
	assert.Equal(t, 33000.0, got.OutstandingBalance)
}

func TestLocations_GroupsExactCaseSensitive(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A"),
		makeTrip("2024-01-16", dredger1, transporter1, 3, 15, 1500, 850, "Site A"),
		makeTrip("2024-01-17", dredger1, transporter1, 2, 15, 1500, 850, "site a"),
	}

	got := Locations(trips, "", "")
	require.Len(t, got, 2)

	byLocation := map[string]model.LocationSummary{}
	for _, l := range got {
		byLocation[l.Location] = l
	}
	assert.Equal(t, 120.0, byLocation["Site A"].TotalVolume)
	assert.Equal(t, 8, byLocation["Site A"].TripCount)
	assert.Equal(t, 30.0, byLocation["site a"].TotalVolume)
	assert.Equal(t, 2, byLocation["site a"].TripCount)
}

func TestLocations_DateRange(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A"),
		makeTrip("2024-02-15", dredger1, transporter1, 3, 15, 1500, 850, "Site A"),
	}

	got := Locations(trips, "2024-01-01", "2024-01-31")
	require.Len(t, got, 1)
	assert.Equal(t, 75.0, got[0].TotalVolume)
	assert.Equal(t, 5, got[0].TripCount)
}

func TestEntity_Idempotent(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, "Site A"),
	}
	payments := []model.Payment{
		{ID: uuid.New(), Date: "2024-01-20", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: 50000},
	}

	first := Entity(model.EntityKindDredger, dredger1, trips, payments, "", "")
	second := Entity(model.EntityKindDredger, dredger1, trips, payments, "", "")

	assert.Equal(t, first, second)
}

func TestEntity_BalanceIdentity(t *testing.T) {
	trips := []model.Trip{
		makeTrip("2024-01-15", dredger1, transporter1, 5, 15, 1500, 850, ""),
	}
	for _, paid := range []float64{0, 50000, 112500, 200000} {
		payments := []model.Payment{
			{ID: uuid.New(), Date: "2024-01-20", EntityType: model.EntityKindDredger, EntityID: dredger1, Amount: paid},
		}
		got := Entity(model.EntityKindDredger, dredger1, trips, payments, "", "")
		assert.Equal(t, got.TotalAmount-got.TotalPaid, got.Balance)
		assert.Equal(t, got.Balance > 0, got.Due())
	}
}
