package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	auditapp "github.com/palengke/backend/internal/application/audit"
)

// AuditHandler exposes the audit trail
type AuditHandler struct {
	BaseHandler
	service *auditapp.TrailService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(service *auditapp.TrailService) *AuditHandler {
	return &AuditHandler{service: service}
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		return 50
	}
	return limit
}

// ForRecord returns the trail for one aggregate, newest first
func (h *AuditHandler) ForRecord(c *gin.Context) {
	aggregateID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	entries, err := h.service.ForRecord(c.Request.Context(), aggregateID, limitQuery(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Recent returns the most recent entries across all aggregates
func (h *AuditHandler) Recent(c *gin.Context) {
	entries, err := h.service.Recent(c.Request.Context(), limitQuery(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// RegisterRoutes registers audit trail routes
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	audit := rg.Group("/audit")
	{
		audit.GET("/recent", h.Recent)
		audit.GET("/record/:id", h.ForRecord)
	}
}
