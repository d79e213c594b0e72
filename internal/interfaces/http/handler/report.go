package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/palengke/backend/internal/application/report"
)

const reportDateLayout = "2006-01-02"

// ReportHandler handles the aggregation and dashboard endpoints
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard returns the landing page summary figures
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// parseRange reads the from/to query dates, defaulting to the current
// calendar month when absent.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(reportDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(reportDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
		}
		// make the upper bound inclusive of the whole day
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return from, to, nil
}

// Expenses returns the expense summary for a date range
func (h *ReportHandler) Expenses(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.service.Expenses(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// ExpensesCSV streams the expense summary as a CSV download
func (h *ReportHandler) ExpensesCSV(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.service.Expenses(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", from.Format(reportDateLayout), to.Format(reportDateLayout))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"group", "key", "count", "total"})
	for category, agg := range summary.ByCategory {
		_ = w.Write([]string{"category", category, fmt.Sprintf("%d", agg.Count), agg.Sum.String()})
	}
	for status, agg := range summary.ByStatus {
		_ = w.Write([]string{"status", status, fmt.Sprintf("%d", agg.Count), agg.Sum.String()})
	}
	_ = w.Write([]string{"total", "", fmt.Sprintf("%d", summary.Total.Count), summary.Total.Sum.String()})
	w.Flush()
}

// ExpiringLeases returns active leases ending within the warning window
func (h *ReportHandler) ExpiringLeases(c *gin.Context) {
	rep, err := h.service.ExpiringLeases(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rep)
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/expenses", h.Expenses)
		reports.GET("/expenses/csv", h.ExpensesCSV)
		reports.GET("/expiring-leases", h.ExpiringLeases)
	}
}
