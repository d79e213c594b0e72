package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/palengke/backend/internal/application/inventory"
)

// InventoryHandler handles office supply inventory endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Create registers a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid item payload")
		return
	}
	if actor, err := getUserID(c); err == nil {
		req.CreatedBy = &actor
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// Get returns one inventory item by id
func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List returns inventory items matching the query filter
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.InventoryItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list query")
		return
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// BelowMinStock returns items whose quantity fell below their minimum
func (h *InventoryHandler) BelowMinStock(c *gin.Context) {
	items, err := h.service.ListBelowMinStock(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// Consume deducts stock for normal usage
func (h *InventoryHandler) Consume(c *gin.Context) {
	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req inventoryapp.ConsumeStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid consume payload")
		return
	}

	item, err := h.service.Consume(c.Request.Context(), itemID, actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Adjust corrects stock after a physical count
func (h *InventoryHandler) Adjust(c *gin.Context) {
	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid adjust payload")
		return
	}

	item, err := h.service.Adjust(c.Request.Context(), itemID, actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// SetMinStock changes an item's reorder threshold
func (h *InventoryHandler) SetMinStock(c *gin.Context) {
	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req inventoryapp.SetMinStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid min stock payload")
		return
	}

	item, err := h.service.SetMinStock(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory")
	{
		items.GET("", h.List)
		items.GET("/below-min-stock", h.BelowMinStock)
		items.GET("/:id", h.Get)
		items.POST("", h.Create)
		items.POST("/:id/consume", h.Consume)
		items.POST("/:id/adjust", h.Adjust)
		items.PUT("/:id/min-stock", h.SetMinStock)
	}
}
