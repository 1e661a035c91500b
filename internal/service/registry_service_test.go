package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinna/dredgeops/internal/model"
)

func TestSnapshotTripResolvedReferences(t *testing.T) {
	dredgerID := uuid.New()
	transporterID := uuid.New()
	truckID := uuid.New()

	dredger := &model.Dredger{ID: dredgerID, RatePerCbm: 1500}
	transporter := &model.Transporter{ID: transporterID, RatePerCbm: 850}
	truck := &model.Truck{ID: truckID, TransporterID: transporterID, PlateNumber: "ABC-123-XY", CapacityCbm: 15}

	input := TripInput{
		Date:            "15/03/2026",
		DredgerID:       dredgerID,
		TransporterID:   transporterID,
		PlateNumber:     "stale-plate",
		Trips:           5,
		CapacityCbm:     99,
		DredgerRate:     1,
		TransporterRate: 1,
		DumpingLocation: " Site A ",
	}

	trip := snapshotTrip(input, dredger, transporter, truck)

	assert.Equal(t, "2026-03-15", trip.Date)
	require.NotNil(t, trip.TruckID)
	assert.Equal(t, truckID, *trip.TruckID)
	assert.Equal(t, "ABC-123-XY", trip.PlateNumber)
	assert.Equal(t, 15.0, trip.CapacityCbm)
	assert.Equal(t, 1500.0, trip.DredgerRate)
	assert.Equal(t, 850.0, trip.TransporterRate)
	assert.Equal(t, 75.0, trip.TotalVolume)
	assert.Equal(t, "Site A", trip.DumpingLocation)
}

func TestSnapshotTripUnresolvedReferencesKeepInputValues(t *testing.T) {
	input := TripInput{
		Date:            "2026-03-15",
		Trips:           3,
		PlateNumber:     "XYZ-99",
		CapacityCbm:     12,
		DredgerRate:     1200,
		TransporterRate: 700,
	}

	trip := snapshotTrip(input, nil, nil, nil)

	assert.Nil(t, trip.TruckID)
	assert.Equal(t, "XYZ-99", trip.PlateNumber)
	assert.Equal(t, 12.0, trip.CapacityCbm)
	assert.Equal(t, 1200.0, trip.DredgerRate)
	assert.Equal(t, 700.0, trip.TransporterRate)
	assert.Equal(t, 36.0, trip.TotalVolume)
}

func TestSnapshotTripZeroTripsZeroVolume(t *testing.T) {
	trip := snapshotTrip(TripInput{Date: "2026-01-01", CapacityCbm: 20}, nil, nil, nil)
	assert.Equal(t, 0.0, trip.TotalVolume)
}

func TestDredgerFromInputValidation(t *testing.T) {
	_, err := dredgerFromInput(DredgerInput{Code: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = dredgerFromInput(DredgerInput{Code: "DRG-01", RatePerCbm: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	dredger, err := dredgerFromInput(DredgerInput{Code: " DRG-01 ", Name: "Delta", RatePerCbm: 1500, Status: "INACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, "DRG-01", dredger.Code)
	assert.Equal(t, model.EntityStatusInactive, dredger.Status)
}

func TestPaymentFromInputValidation(t *testing.T) {
	_, err := paymentFromInput(PaymentInput{Date: "", EntityType: model.EntityKindDredger})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = paymentFromInput(PaymentInput{Date: "2026-01-01", EntityType: "truck"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = paymentFromInput(PaymentInput{Date: "2026-01-01", EntityType: model.EntityKindDredger, Amount: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	payment, err := paymentFromInput(PaymentInput{
		Date:       "01/02/2026",
		EntityType: model.EntityKindTransporter,
		EntityID:   uuid.New(),
		Amount:     50000,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", payment.Date)
	assert.Equal(t, "Bank Transfer", payment.PaymentMethod)
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, model.EntityStatusActive, parseStatus(""))
	assert.Equal(t, model.EntityStatusActive, parseStatus("active"))
	assert.Equal(t, model.EntityStatusInactive, parseStatus("Inactive"))
	assert.Equal(t, model.EntityStatusActive, parseStatus("retired"))
}

func TestBuildFileName(t *testing.T) {
	assert.Equal(t, "dredging-report.xlsx", buildFileName("dredging-report", "", "", "xlsx"))
	assert.Equal(t, "dredging-report-2026-01-01-now.xlsx", buildFileName("dredging-report", "2026-01-01", "", "xlsx"))
	assert.Equal(t, "statement-DRG-01-start-2026-02-01.pdf", buildFileName("statement-DRG-01", "", "2026-02-01", "pdf"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "DRG-01", sanitizeFileName("DRG-01"))
	assert.Equal(t, "Delta-Dredger", sanitizeFileName("Delta Dredger"))
	assert.Equal(t, "", sanitizeFileName("///"))
}
