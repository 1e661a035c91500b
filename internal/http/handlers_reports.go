package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func (h *Handler) projectReport(c *gin.Context) {
	report, err := h.reports.ProjectReport(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) entityReport(c *gin.Context) {
	kind, err := parseEntityKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reports.EntityReport(c.Request.Context(), kind, id, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "Paid"
	if report.Due() {
		status = "Due"
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": report,
		"status":  status,
	})
}

func (h *Handler) locationReport(c *gin.Context) {
	locations, err := h.reports.LocationReport(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

type exportRequest struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (h *Handler) exportWorkbook(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.ExportWorkbook(c.Request.Context(), req.DateFrom, req.DateTo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypeXLSX, result.Content)
}

type statementRequest struct {
	Kind     string `json:"kind" binding:"required"`
	EntityID string `json:"entity_id" binding:"required"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (h *Handler) entityStatement(c *gin.Context) {
	var req statementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := parseEntityKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}
	id, err := uuid.Parse(strings.TrimSpace(req.EntityID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity_id"})
		return
	}

	result, err := h.reports.EntityStatement(c.Request.Context(), kind, id, req.DateFrom, req.DateTo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypePDF, result.Content)
}
