package legacy

import (
	"time"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/trade"
)

// Converters from canonical aggregates into the flat legacy record
// shape. These keep the fixed collections readable by anything that
// still consumes the exported browser data, so field names below follow
// the original JSON layout, not our Go naming.

// LeaseToRecord flattens a lease into the legacy shape
func LeaseToRecord(lease *leasing.Lease) legacy.Record {
	rec := legacy.Record{
		ID:        lease.ID.String(),
		Status:    lease.Status.String(),
		CreatedAt: lease.CreatedAt,
		UpdatedAt: lease.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["leaseNumber"] = lease.LeaseNumber
	rec.Fields["applicantName"] = lease.ApplicantName
	rec.Fields["stallId"] = lease.StallID.String()
	if lease.TenantID != nil {
		rec.Fields["tenantId"] = lease.TenantID.String()
	}
	rec.Fields["monthlyRate"] = lease.MonthlyRate.InexactFloat64()
	rec.Fields["leaseStart"] = lease.LeaseStart.Format(time.RFC3339)
	rec.Fields["leaseEnd"] = lease.LeaseEnd.Format(time.RFC3339)
	if lease.IDArtifactURL != "" {
		rec.Fields["idArtifactUrl"] = lease.IDArtifactURL
	}
	if lease.RejectionReason != "" {
		rec.Fields[legacy.FieldRejectionReason] = lease.RejectionReason
	}
	if lease.ArchivedAt != nil {
		rec.Fields[legacy.FieldArchivedAt] = lease.ArchivedAt.Format(time.RFC3339)
	}
	return rec
}

// LeaseCollection returns the legacy collection a lease lives in,
// mirroring the original per-tab partitioning.
func LeaseCollection(status leasing.LeaseStatus) string {
	switch status {
	case leasing.LeaseStatusPendingApproval:
		return legacy.CollectionLeaseRequests
	case leasing.LeaseStatusRejected:
		return legacy.CollectionRejectedLeases
	default:
		return legacy.CollectionApprovedLeases
	}
}

// ExpenseToRecord flattens an expense into the legacy shape
func ExpenseToRecord(expense *finance.Expense) legacy.Record {
	rec := legacy.Record{
		ID:        expense.ID.String(),
		Status:    expense.ApprovalStatus.String(),
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["expenseNumber"] = expense.ExpenseNumber
	rec.Fields["category"] = expense.Category.String()
	rec.Fields["amount"] = expense.Amount.InexactFloat64()
	rec.Fields["description"] = expense.Description
	rec.Fields["incurredAt"] = expense.IncurredAt.Format(time.RFC3339)
	rec.Fields["paymentStatus"] = expense.PaymentStatus.String()
	if expense.RejectionReason != "" {
		rec.Fields[legacy.FieldRejectionReason] = expense.RejectionReason
	}
	return rec
}

// InventoryItemToRecord flattens an inventory item into the legacy shape
func InventoryItemToRecord(item *inventory.InventoryItem) legacy.Record {
	rec := legacy.Record{
		ID:        item.ID.String(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["name"] = item.Name
	rec.Fields["unit"] = item.Unit
	rec.Fields["qty"] = item.Quantity.InexactFloat64()
	rec.Fields["unitPrice"] = item.UnitPrice.InexactFloat64()
	rec.Fields["minStock"] = item.MinStock.InexactFloat64()
	return rec
}

// PurchaseOrderToRecord flattens a purchase order into the legacy shape
func PurchaseOrderToRecord(order *trade.PurchaseOrder) legacy.Record {
	rec := legacy.Record{
		ID:        order.ID.String(),
		Status:    order.Status.String(),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["orderNumber"] = order.OrderNumber
	rec.Fields["supplier"] = order.SupplierName
	rec.Fields["totalAmount"] = order.TotalAmount.InexactFloat64()
	rec.Fields["orderedAt"] = order.OrderedAt.Format(time.RFC3339)

	items := make([]any, len(order.Items))
	for i, item := range order.Items {
		items[i] = map[string]any{
			"itemId":    item.ID.String(),
			"itemName":  item.ItemName,
			"qty":       item.Quantity.InexactFloat64(),
			"unitPrice": item.UnitCost.InexactFloat64(),
		}
	}
	rec.Fields["items"] = items
	return rec
}

// RentPaymentToRecord flattens a rent payment into the legacy shape
func RentPaymentToRecord(payment *finance.RentPayment) legacy.Record {
	rec := legacy.Record{
		ID:        payment.ID.String(),
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["orNumber"] = payment.ReceiptNumber
	rec.Fields["leaseId"] = payment.LeaseID.String()
	rec.Fields["tenantId"] = payment.TenantID.String()
	rec.Fields["amount"] = payment.Amount.InexactFloat64()
	rec.Fields["method"] = string(payment.Method)
	rec.Fields["periodStart"] = payment.PeriodStart.Format(time.RFC3339)
	rec.Fields["periodEnd"] = payment.PeriodEnd.Format(time.RFC3339)
	rec.Fields["paidAt"] = payment.PaidAt.Format(time.RFC3339)
	return rec
}

// LoanApplicationToRecord flattens a loan application into the legacy shape
func LoanApplicationToRecord(application *lending.LoanApplication) legacy.Record {
	rec := legacy.Record{
		ID:        application.ID.String(),
		Status:    application.Status.String(),
		CreatedAt: application.CreatedAt,
		UpdatedAt: application.UpdatedAt,
		Fields:    make(map[string]any),
	}
	rec.Fields["applicationNumber"] = application.ApplicationNumber
	rec.Fields["tenantId"] = application.TenantID.String()
	rec.Fields["amount"] = application.Amount.InexactFloat64()
	rec.Fields["termMonths"] = application.TermMonths
	rec.Fields["purpose"] = application.Purpose
	if application.RejectionReason != "" {
		rec.Fields[legacy.FieldRejectionReason] = application.RejectionReason
	}
	return rec
}
