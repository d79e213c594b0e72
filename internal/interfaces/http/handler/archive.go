package handler

import (
	"github.com/gin-gonic/gin"

	archiveapp "github.com/palengke/backend/internal/application/archive"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// ArchiveHandler handles soft-delete, restore and purge of legacy
// records. All three operations are admin-only.
type ArchiveHandler struct {
	BaseHandler
	service *archiveapp.ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler
func NewArchiveHandler(service *archiveapp.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

// ArchiveRequest names the record to archive and why
type ArchiveRequest struct {
	Entity string `json:"entity" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Reason string `json:"reason"`
}

// RestoreRequest names the archived record to bring back
type RestoreRequest struct {
	Entity string `json:"entity" binding:"required"`
	ID     string `json:"id" binding:"required"`
}

// Archive moves a record out of its active collection
func (h *ArchiveHandler) Archive(c *gin.Context) {
	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Entity and id are required")
		return
	}

	record, err := h.service.Archive(c.Request.Context(), req.Entity, req.ID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Restore brings an archived record back to its active collection
func (h *ArchiveHandler) Restore(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Entity and id are required")
		return
	}

	record, err := h.service.Restore(c.Request.Context(), req.Entity, req.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Purge permanently removes a record from every collection it occupies
func (h *ArchiveHandler) Purge(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Entity and id are required")
		return
	}

	results, err := h.service.Purge(c.Request.Context(), req.Entity, req.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, results)
}

// RegisterRoutes registers archive routes
func (h *ArchiveHandler) RegisterRoutes(rg *gin.RouterGroup) {
	arch := rg.Group("/archive")
	arch.Use(middleware.RequireRole(identity.RoleAdmin))
	{
		arch.POST("", h.Archive)
		arch.POST("/restore", h.Restore)
		arch.POST("/purge", h.Purge)
	}
}
