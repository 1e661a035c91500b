package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/obinna/dredgeops/internal/http/middleware"
	"github.com/obinna/dredgeops/internal/service"
)

type entityRequest struct {
	Code           string  `json:"code" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	RatePerCbm     float64 `json:"rate_per_cbm"`
	Status         string  `json:"status"`
	Contractor     string  `json:"contractor"`
	ContractNumber string  `json:"contract_number"`
}

type truckRequest struct {
	Name        string  `json:"name"`
	PlateNumber string  `json:"plate_number" binding:"required"`
	CapacityCbm float64 `json:"capacity_cbm"`
}

type tripRequest struct {
	Date            string     `json:"date" binding:"required"`
	DredgerID       uuid.UUID  `json:"dredger_id" binding:"required"`
	TransporterID   uuid.UUID  `json:"transporter_id" binding:"required"`
	TruckID         *uuid.UUID `json:"truck_id"`
	PlateNumber     string     `json:"plate_number"`
	Trips           int        `json:"trips"`
	CapacityCbm     float64    `json:"capacity_cbm"`
	DredgerRate     float64    `json:"dredger_rate"`
	TransporterRate float64    `json:"transporter_rate"`
	DumpingLocation string     `json:"dumping_location"`
	Notes           string     `json:"notes"`
}

type paymentRequest struct {
	Date          string    `json:"date" binding:"required"`
	EntityType    string    `json:"entity_type" binding:"required"`
	EntityID      uuid.UUID `json:"entity_id" binding:"required"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
	Notes         string    `json:"notes"`
}

func (h *Handler) listDredgers(c *gin.Context) {
	dredgers, err := h.registry.ListDredgers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dredgers)
}

func (h *Handler) createDredger(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req entityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dredger, err := h.registry.CreateDredger(c.Request.Context(), principal, service.DredgerInput{
		Code:           req.Code,
		Name:           req.Name,
		RatePerCbm:     req.RatePerCbm,
		Status:         req.Status,
		Contractor:     req.Contractor,
		ContractNumber: req.ContractNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dredger)
}

func (h *Handler) updateDredger(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req entityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.registry.UpdateDredger(c.Request.Context(), principal, id, service.DredgerInput{
		Code:           req.Code,
		Name:           req.Name,
		RatePerCbm:     req.RatePerCbm,
		Status:         req.Status,
		Contractor:     req.Contractor,
		ContractNumber: req.ContractNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteDredger(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.registry.DeleteDredger(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTransporters(c *gin.Context) {
	transporters, err := h.registry.ListTransporters(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transporters)
}

func (h *Handler) createTransporter(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req entityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	transporter, err := h.registry.CreateTransporter(c.Request.Context(), principal, service.TransporterInput{
		Code:           req.Code,
		Name:           req.Name,
		RatePerCbm:     req.RatePerCbm,
		Status:         req.Status,
		Contractor:     req.Contractor,
		ContractNumber: req.ContractNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transporter)
}

func (h *Handler) updateTransporter(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req entityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.registry.UpdateTransporter(c.Request.Context(), principal, id, service.TransporterInput{
		Code:           req.Code,
		Name:           req.Name,
		RatePerCbm:     req.RatePerCbm,
		Status:         req.Status,
		Contractor:     req.Contractor,
		ContractNumber: req.ContractNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteTransporter(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.registry.DeleteTransporter(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	transporterID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req truckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	truck, err := h.registry.AddTruck(c.Request.Context(), principal, transporterID, service.TruckInput{
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		CapacityCbm: req.CapacityCbm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (h *Handler) deleteTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	transporterID, ok := parseID(c, "id")
	if !ok {
		return
	}
	truckID, ok := parseID(c, "truckID")
	if !ok {
		return
	}
	if err := h.registry.DeleteTruck(c.Request.Context(), principal, transporterID, truckID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.registry.ListTrips(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) createTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.registry.CreateTrip(c.Request.Context(), principal, tripInputFromRequest(req))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) replaceTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.registry.ReplaceTrip(c.Request.Context(), principal, id, tripInputFromRequest(req))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) deleteTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.registry.DeleteTrip(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listPayments(c *gin.Context) {
	payments, err := h.registry.ListPayments(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) createPayment(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := paymentInputFromRequest(req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	payment, err := h.registry.CreatePayment(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) replacePayment(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := paymentInputFromRequest(req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	payment, err := h.registry.ReplacePayment(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) deletePayment(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.registry.DeletePayment(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tripInputFromRequest(req tripRequest) service.TripInput {
	return service.TripInput{
		Date:            req.Date,
		DredgerID:       req.DredgerID,
		TransporterID:   req.TransporterID,
		TruckID:         req.TruckID,
		PlateNumber:     req.PlateNumber,
		Trips:           req.Trips,
		CapacityCbm:     req.CapacityCbm,
		DredgerRate:     req.DredgerRate,
		TransporterRate: req.TransporterRate,
		DumpingLocation: req.DumpingLocation,
		Notes:           req.Notes,
	}
}

func paymentInputFromRequest(req paymentRequest) (service.PaymentInput, error) {
	kind, err := parseEntityKind(req.EntityType)
	if err != nil {
		return service.PaymentInput{}, err
	}
	return service.PaymentInput{
		Date:          req.Date,
		EntityType:    kind,
		EntityID:      req.EntityID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}, nil
}
