package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/palengke/backend/internal/application/finance"
)

// PaymentHandler handles rent payment endpoints. Payments are an
// append-only ledger, so corrections post a reversal instead of
// editing the original row.
type PaymentHandler struct {
	BaseHandler
	service *financeapp.RentPaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(service *financeapp.RentPaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Record records a rent payment against an active lease
func (h *PaymentHandler) Record(c *gin.Context) {
	var req financeapp.RecordRentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment payload")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}
	req.RecordedBy = actor

	payment, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// Correct posts a reversal entry for a recorded payment
func (h *PaymentHandler) Correct(c *gin.Context) {
	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req financeapp.CorrectRentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Correction remark is required")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}
	req.RecordedBy = actor

	payment, err := h.service.Correct(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// HistoryByLease returns the payment history for a lease
func (h *PaymentHandler) HistoryByLease(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	payments, err := h.service.HistoryByLease(c.Request.Context(), leaseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payments)
}

// HistoryByTenant returns the payment history for a tenant
func (h *PaymentHandler) HistoryByTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	payments, err := h.service.HistoryByTenant(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payments)
}

// RegisterRoutes registers rent payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.POST("/:id/correct", h.Correct)
		payments.GET("/lease/:id", h.HistoryByLease)
		payments.GET("/tenant/:id", h.HistoryByTenant)
	}
}
