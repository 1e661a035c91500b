package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/obinna/dredgeops/internal/auth"
	"github.com/obinna/dredgeops/internal/model"
	"github.com/obinna/dredgeops/internal/repository"
	"github.com/obinna/dredgeops/internal/summary"
)

// RegistryService owns the CRUD side of the record store: dredgers,
// transporters and their trucks, the trip log and the payment register.
// Trips get their rate and capacity snapshots here, at write time.
type RegistryService struct {
	dredgers     *repository.DredgerRepository
	transporters *repository.TransporterRepository
	trips        *repository.TripRepository
	payments     *repository.PaymentRepository
}

func NewRegistryService(
	dredgers *repository.DredgerRepository,
	transporters *repository.TransporterRepository,
	trips *repository.TripRepository,
	payments *repository.PaymentRepository,
) *RegistryService {
	return &RegistryService{
		dredgers:     dredgers,
		transporters: transporters,
		trips:        trips,
		payments:     payments,
	}
}

type DredgerInput struct {
	Code           string
	Name           string
	RatePerCbm     float64
	Status         string
	Contractor     string
	ContractNumber string
}

type TransporterInput struct {
	Code           string
	Name           string
	RatePerCbm     float64
	Status         string
	Contractor     string
	ContractNumber string
}

type TruckInput struct {
	Name        string
	PlateNumber string
	CapacityCbm float64
}

type TripInput struct {
	Date            string
	DredgerID       uuid.UUID
	TransporterID   uuid.UUID
	TruckID         *uuid.UUID
	PlateNumber     string
	Trips           int
	CapacityCbm     float64
	DredgerRate     float64
	TransporterRate float64
	DumpingLocation string
	Notes           string
}

type PaymentInput struct {
	Date          string
	EntityType    model.EntityKind
	EntityID      uuid.UUID
	Amount        float64
	PaymentMethod string
	Reference     string
	Notes         string
}

func (s *RegistryService) ListDredgers(ctx context.Context) ([]model.Dredger, error) {
	return s.dredgers.List(ctx)
}

func (s *RegistryService) CreateDredger(ctx context.Context, principal auth.Principal, input DredgerInput) (*model.Dredger, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	dredger, err := dredgerFromInput(input)
	if err != nil {
		return nil, err
	}
	return s.dredgers.Create(ctx, dredger)
}

func (s *RegistryService) UpdateDredger(ctx context.Context, principal auth.Principal, id uuid.UUID, input DredgerInput) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	dredger, err := dredgerFromInput(input)
	if err != nil {
		return err
	}
	dredger.ID = id
	return translateNotFound(s.dredgers.Update(ctx, dredger))
}

func (s *RegistryService) DeleteDredger(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	return translateNotFound(s.dredgers.Delete(ctx, id))
}

func (s *RegistryService) ListTransporters(ctx context.Context) ([]model.Transporter, error) {
	return s.transporters.List(ctx)
}

func (s *RegistryService) CreateTransporter(ctx context.Context, principal auth.Principal, input TransporterInput) (*model.Transporter, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	transporter, err := transporterFromInput(input)
	if err != nil {
		return nil, err
	}
	return s.transporters.Create(ctx, transporter)
}

func (s *RegistryService) UpdateTransporter(ctx context.Context, principal auth.Principal, id uuid.UUID, input TransporterInput) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	transporter, err := transporterFromInput(input)
	if err != nil {
		return err
	}
	transporter.ID = id
	return translateNotFound(s.transporters.Update(ctx, transporter))
}

// DeleteTransporter cascades to the transporter's trucks. The trip log is
// untouched: every trip keeps its plate and capacity snapshots.
func (s *RegistryService) DeleteTransporter(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	return translateNotFound(s.transporters.Delete(ctx, id))
}

func (s *RegistryService) AddTruck(ctx context.Context, principal auth.Principal, transporterID uuid.UUID, input TruckInput) (*model.Truck, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.PlateNumber) == "" {
		return nil, fmt.Errorf("%w: plate_number is required", ErrInvalidInput)
	}
	if input.CapacityCbm < 0 {
		return nil, fmt.Errorf("%w: capacity_cbm must not be negative", ErrInvalidInput)
	}
	if _, err := s.transporters.GetByID(ctx, transporterID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.transporters.AddTruck(ctx, model.Truck{
		TransporterID: transporterID,
		Name:          strings.TrimSpace(input.Name),
		PlateNumber:   strings.TrimSpace(input.PlateNumber),
		CapacityCbm:   input.CapacityCbm,
		Status:        model.EntityStatusActive,
	})
}

func (s *RegistryService) DeleteTruck(ctx context.Context, principal auth.Principal, transporterID, truckID uuid.UUID) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	return translateNotFound(s.transporters.DeleteTruck(ctx, transporterID, truckID))
}

func (s *RegistryService) ListTrips(ctx context.Context, dateFrom, dateTo string) ([]model.Trip, error) {
	return s.trips.List(ctx, summary.NormalizeDate(dateFrom), summary.NormalizeDate(dateTo))
}

func (s *RegistryService) CreateTrip(ctx context.Context, principal auth.Principal, input TripInput) (*model.Trip, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	trip, err := s.buildTrip(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.trips.Create(ctx, trip)
}

// ReplaceTrip is the only permitted edit: a full replacement with snapshots
// taken afresh from the entities as they stand now.
func (s *RegistryService) ReplaceTrip(ctx context.Context, principal auth.Principal, id uuid.UUID, input TripInput) (*model.Trip, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	trip, err := s.buildTrip(ctx, input)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	if err := translateNotFound(s.trips.Replace(ctx, trip)); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *RegistryService) DeleteTrip(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	return translateNotFound(s.trips.Delete(ctx, id))
}

func (s *RegistryService) ListPayments(ctx context.Context, dateFrom, dateTo string) ([]model.Payment, error) {
	return s.payments.List(ctx, summary.NormalizeDate(dateFrom), summary.NormalizeDate(dateTo))
}

func (s *RegistryService) CreatePayment(ctx context.Context, principal auth.Principal, input PaymentInput) (*model.Payment, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	payment, err := paymentFromInput(input)
	if err != nil {
		return nil, err
	}
	return s.payments.Create(ctx, payment)
}

func (s *RegistryService) ReplacePayment(ctx context.Context, principal auth.Principal, id uuid.UUID, input PaymentInput) (*model.Payment, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}
	payment, err := paymentFromInput(input)
	if err != nil {
		return nil, err
	}
	payment.ID = id
	if err := translateNotFound(s.payments.Replace(ctx, payment)); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *RegistryService) DeletePayment(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	return translateNotFound(s.payments.Delete(ctx, id))
}

// buildTrip resolves the referenced records and takes the write-time
// snapshots. Unresolved references are not fatal: the trip keeps whatever
// rate and capacity values the caller supplied, so a best-effort record
// can still be computed over later.
func (s *RegistryService) buildTrip(ctx context.Context, input TripInput) (model.Trip, error) {
	if strings.TrimSpace(input.Date) == "" {
		return model.Trip{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if input.Trips < 0 {
		return model.Trip{}, fmt.Errorf("%w: trips must not be negative", ErrInvalidInput)
	}
	if input.CapacityCbm < 0 || input.DredgerRate < 0 || input.TransporterRate < 0 {
		return model.Trip{}, fmt.Errorf("%w: rates and capacity must not be negative", ErrInvalidInput)
	}

	var dredger *model.Dredger
	if d, err := s.dredgers.GetByID(ctx, input.DredgerID); err == nil {
		dredger = d
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Trip{}, err
	}

	var transporter *model.Transporter
	if t, err := s.transporters.GetByID(ctx, input.TransporterID); err == nil {
		transporter = t
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Trip{}, err
	}

	var truck *model.Truck
	if input.TruckID != nil {
		if tr, err := s.transporters.GetTruck(ctx, *input.TruckID); err == nil {
			truck = tr
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Trip{}, err
		}
	} else if input.PlateNumber != "" && transporter != nil {
		if tr, err := s.transporters.FindTruckByPlate(ctx, transporter.ID, input.PlateNumber); err == nil {
			truck = tr
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Trip{}, err
		}
	}

	return snapshotTrip(input, dredger, transporter, truck), nil
}

// snapshotTrip freezes the trip record: capacity from the resolved truck,
// rates from the resolved entities' current prices, volume derived once.
// Any reference that did not resolve falls back to the caller's values.
func snapshotTrip(input TripInput, dredger *model.Dredger, transporter *model.Transporter, truck *model.Truck) model.Trip {
	trip := model.Trip{
		Date:            summary.NormalizeDate(input.Date),
		DredgerID:       input.DredgerID,
		TransporterID:   input.TransporterID,
		TruckID:         input.TruckID,
		PlateNumber:     strings.TrimSpace(input.PlateNumber),
		Trips:           input.Trips,
		CapacityCbm:     input.CapacityCbm,
		DredgerRate:     input.DredgerRate,
		TransporterRate: input.TransporterRate,
		DumpingLocation: strings.TrimSpace(input.DumpingLocation),
		Notes:           input.Notes,
	}

	if truck != nil {
		trip.TruckID = &truck.ID
		trip.PlateNumber = truck.PlateNumber
		trip.CapacityCbm = truck.CapacityCbm
	}
	if dredger != nil {
		trip.DredgerRate = dredger.RatePerCbm
	}
	if transporter != nil {
		trip.TransporterRate = transporter.RatePerCbm
	}

	trip.TotalVolume = float64(trip.Trips) * trip.CapacityCbm
	return trip
}

func dredgerFromInput(input DredgerInput) (model.Dredger, error) {
	if strings.TrimSpace(input.Code) == "" {
		return model.Dredger{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if input.RatePerCbm < 0 {
		return model.Dredger{}, fmt.Errorf("%w: rate_per_cbm must not be negative", ErrInvalidInput)
	}
	return model.Dredger{
		Code:           strings.TrimSpace(input.Code),
		Name:           strings.TrimSpace(input.Name),
		RatePerCbm:     input.RatePerCbm,
		Status:         parseStatus(input.Status),
		Contractor:     strings.TrimSpace(input.Contractor),
		ContractNumber: strings.TrimSpace(input.ContractNumber),
	}, nil
}

func transporterFromInput(input TransporterInput) (model.Transporter, error) {
	if strings.TrimSpace(input.Code) == "" {
		return model.Transporter{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if input.RatePerCbm < 0 {
		return model.Transporter{}, fmt.Errorf("%w: rate_per_cbm must not be negative", ErrInvalidInput)
	}
	return model.Transporter{
		Code:           strings.TrimSpace(input.Code),
		Name:           strings.TrimSpace(input.Name),
		RatePerCbm:     input.RatePerCbm,
		Status:         parseStatus(input.Status),
		Contractor:     strings.TrimSpace(input.Contractor),
		ContractNumber: strings.TrimSpace(input.ContractNumber),
	}, nil
}

func paymentFromInput(input PaymentInput) (model.Payment, error) {
	if strings.TrimSpace(input.Date) == "" {
		return model.Payment{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if input.EntityType != model.EntityKindDredger && input.EntityType != model.EntityKindTransporter {
		return model.Payment{}, fmt.Errorf("%w: entity_type must be dredger or transporter", ErrInvalidInput)
	}
	if input.Amount < 0 {
		return model.Payment{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		method = "Bank Transfer"
	}
	return model.Payment{
		Date:          summary.NormalizeDate(input.Date),
		EntityType:    input.EntityType,
		EntityID:      input.EntityID,
		Amount:        input.Amount,
		PaymentMethod: method,
		Reference:     strings.TrimSpace(input.Reference),
		Notes:         input.Notes,
	}, nil
}

func parseStatus(raw string) model.EntityStatus {
	if strings.EqualFold(strings.TrimSpace(raw), string(model.EntityStatusInactive)) {
		return model.EntityStatusInactive
	}
	return model.EntityStatusActive
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
