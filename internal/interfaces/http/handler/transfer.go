package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	legacyapp "github.com/palengke/backend/internal/application/legacy"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// uploads larger than this are rejected before parsing
const maxImportBytes = 32 << 20

// TransferHandler handles bulk import and export of the legacy store
type TransferHandler struct {
	BaseHandler
	service *legacyapp.ImportService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service *legacyapp.ImportService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Import merges an uploaded JSON export into the store. Existing
// records win; only unseen ids are added.
func (h *TransferHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		h.BadRequest(c, "Could not read upload")
		return
	}
	if len(data) > maxImportBytes {
		h.BadRequest(c, "Upload too large")
		return
	}

	result, err := h.service.Import(c.Request.Context(), data)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Export streams the whole store as a JSON download
func (h *TransferHandler) Export(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("palengke_export_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", data)
}

// RegisterRoutes registers import/export routes, admin-only
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transfer := rg.Group("/transfer")
	transfer.Use(middleware.RequireRole(identity.RoleAdmin))
	{
		transfer.POST("/import", h.Import)
		transfer.GET("/export", h.Export)
	}
}
