package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/obinna/dredgeops/internal/model"
	"github.com/obinna/dredgeops/internal/service"
)

type Handler struct {
	registry *service.RegistryService
	reports  *service.ReportService
	log      zerolog.Logger
}

func NewHandler(registry *service.RegistryService, reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{registry: registry, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/dredgers", h.listDredgers)
	protected.POST("/dredgers", h.createDredger)
	protected.PUT("/dredgers/:id", h.updateDredger)
	protected.DELETE("/dredgers/:id", h.deleteDredger)

	protected.GET("/transporters", h.listTransporters)
	protected.POST("/transporters", h.createTransporter)
	protected.PUT("/transporters/:id", h.updateTransporter)
	protected.DELETE("/transporters/:id", h.deleteTransporter)
	protected.POST("/transporters/:id/trucks", h.addTruck)
	protected.DELETE("/transporters/:id/trucks/:truckID", h.deleteTruck)

	protected.GET("/trips", h.listTrips)
	protected.POST("/trips", h.createTrip)
	protected.PUT("/trips/:id", h.replaceTrip)
	protected.DELETE("/trips/:id", h.deleteTrip)

	protected.GET("/payments", h.listPayments)
	protected.POST("/payments", h.createPayment)
	protected.PUT("/payments/:id", h.replacePayment)
	protected.DELETE("/payments/:id", h.deletePayment)

	protected.GET("/reports/project", h.projectReport)
	protected.GET("/reports/entities/:kind/:id", h.entityReport)
	protected.GET("/reports/locations", h.locationReport)
	protected.POST("/reports/export", h.exportWorkbook)
	protected.POST("/reports/statement", h.entityStatement)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(param)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

func parseEntityKind(raw string) (model.EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dredger":
		return model.EntityKindDredger, nil
	case "transporter":
		return model.EntityKindTransporter, nil
	default:
		return "", service.ErrInvalidInput
	}
}
