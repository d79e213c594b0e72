package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

func newTestExpense(t *testing.T, amount float64) *Expense {
	t.Helper()
	expense, err := NewExpense(
		"EXP-2026-0001",
		ExpenseCategoryMaintenance,
		valueobject.NewMoneyPHPFromFloat(amount),
		"Roof repair, wet section",
		time.Now().AddDate(0, 0, -2),
	)
	require.NoError(t, err)
	return expense
}

func TestNewExpense(t *testing.T) {
	expense := newTestExpense(t, 2500)

	assert.Equal(t, ApprovalStatusPending, expense.ApprovalStatus)
	assert.Equal(t, ExpensePaymentPending, expense.PaymentStatus)
	assert.Len(t, expense.GetDomainEvents(), 1)
}

func TestNewExpenseValidation(t *testing.T) {
	_, err := NewExpense("", ExpenseCategoryOther, valueobject.NewMoneyPHPFromFloat(100), "desc", time.Now())
	assert.Error(t, err)

	_, err = NewExpense("EXP-1", ExpenseCategory("FOOD"), valueobject.NewMoneyPHPFromFloat(100), "desc", time.Now())
	assert.Error(t, err)

	_, err = NewExpense("EXP-1", ExpenseCategoryOther, valueobject.ZeroPHP(), "desc", time.Now())
	assert.Error(t, err)

	_, err = NewExpense("EXP-1", ExpenseCategoryOther, valueobject.NewMoneyPHPFromFloat(100), "", time.Now())
	assert.Error(t, err)
}

func TestApproveWithinThreshold(t *testing.T) {
	policy := DefaultApprovalPolicy()
	approver := uuid.New()

	// Exactly at the limit passes: the threshold is inclusive.
	expense := newTestExpense(t, 10000)
	err := expense.Approve(approver, identity.RoleManager, policy)
	require.NoError(t, err)
	assert.Equal(t, ApprovalStatusApproved, expense.ApprovalStatus)
	require.NotNil(t, expense.ApprovedBy)
	assert.Equal(t, approver, *expense.ApprovedBy)
	assert.NotNil(t, expense.ApprovedAt)
}

func TestApproveExceedsThreshold(t *testing.T) {
	policy := DefaultApprovalPolicy()

	expense := newTestExpense(t, 10001)
	err := expense.Approve(uuid.New(), identity.RoleManager, policy)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeThresholdExceeded, domainErr.Code)

	// Rejection by policy must leave the expense untouched.
	assert.Equal(t, ApprovalStatusPending, expense.ApprovalStatus)
	assert.Nil(t, expense.ApprovedBy)
}

func TestApprovalThresholdsByRole(t *testing.T) {
	policy := DefaultApprovalPolicy()

	tests := []struct {
		name    string
		role    identity.Role
		amount  float64
		wantErr bool
	}{
		{"manager at limit", identity.RoleManager, 10000, false},
		{"manager over limit", identity.RoleManager, 10000.01, true},
		{"market master under limit", identity.RoleMarketMaster, 49999.99, false},
		{"market master at limit", identity.RoleMarketMaster, 50000, false},
		{"market master over limit", identity.RoleMarketMaster, 50001, true},
		{"executive unlimited", identity.RoleExecutive, 9999999, false},
		{"finance head unlimited", identity.RoleFinanceHead, 9999999, false},
		{"admin cannot approve", identity.RoleAdmin, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := newTestExpense(t, tt.amount)
			err := expense.Approve(uuid.New(), tt.role, policy)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApproveTwice(t *testing.T) {
	policy := DefaultApprovalPolicy()
	expense := newTestExpense(t, 500)

	require.NoError(t, expense.Approve(uuid.New(), identity.RoleExecutive, policy))
	err := expense.Approve(uuid.New(), identity.RoleExecutive, policy)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidTransition, domainErr.Code)
}

func TestRejectRequiresReason(t *testing.T) {
	expense := newTestExpense(t, 500)

	err := expense.Reject(uuid.New(), "")
	assert.Error(t, err)
	assert.Equal(t, ApprovalStatusPending, expense.ApprovalStatus)

	require.NoError(t, expense.Reject(uuid.New(), "duplicate entry"))
	assert.Equal(t, ApprovalStatusRejected, expense.ApprovalStatus)
	assert.Equal(t, "duplicate entry", expense.RejectionReason)
}

func TestPaymentRequiresApproval(t *testing.T) {
	policy := DefaultApprovalPolicy()
	expense := newTestExpense(t, 500)

	// Pending expense: the disbursement lifecycle must not move.
	err := expense.GenerateCheckRequest(uuid.New(), identity.RoleFinanceHead, policy)
	require.Error(t, err)
	assert.Equal(t, ExpensePaymentPending, expense.PaymentStatus)

	err = expense.AuthorizeRelease(uuid.New(), identity.RoleExecutive, policy)
	require.Error(t, err)
	assert.Equal(t, ExpensePaymentPending, expense.PaymentStatus)
}

func TestPaymentLifecycle(t *testing.T) {
	policy := DefaultApprovalPolicy()
	expense := newTestExpense(t, 500)
	financeHead := uuid.New()
	executive := uuid.New()

	require.NoError(t, expense.Approve(uuid.New(), identity.RoleManager, policy))

	// Release before a check request exists must fail.
	err := expense.AuthorizeRelease(executive, identity.RoleExecutive, policy)
	assert.Error(t, err)

	require.NoError(t, expense.GenerateCheckRequest(financeHead, identity.RoleFinanceHead, policy))
	assert.Equal(t, ExpensePaymentReadyForPayment, expense.PaymentStatus)

	require.NoError(t, expense.AuthorizeRelease(executive, identity.RoleExecutive, policy))
	assert.Equal(t, ExpensePaymentPaid, expense.PaymentStatus)
	assert.True(t, expense.IsPaid())
	require.NotNil(t, expense.ReleasedBy)
	assert.Equal(t, executive, *expense.ReleasedBy)
}

func TestPaymentRoleRestrictions(t *testing.T) {
	policy := DefaultApprovalPolicy()
	expense := newTestExpense(t, 500)

	require.NoError(t, expense.Approve(uuid.New(), identity.RoleManager, policy))

	// Only the finance head may generate check requests.
	for _, role := range []identity.Role{identity.RoleAdmin, identity.RoleManager, identity.RoleMarketMaster, identity.RoleExecutive} {
		err := expense.GenerateCheckRequest(uuid.New(), role, policy)
		assert.Error(t, err, string(role))
	}

	require.NoError(t, expense.GenerateCheckRequest(uuid.New(), identity.RoleFinanceHead, policy))

	// Only an executive may authorize the release.
	for _, role := range []identity.Role{identity.RoleAdmin, identity.RoleManager, identity.RoleMarketMaster, identity.RoleFinanceHead} {
		err := expense.AuthorizeRelease(uuid.New(), role, policy)
		assert.Error(t, err, string(role))
	}

	require.NoError(t, expense.AuthorizeRelease(uuid.New(), identity.RoleExecutive, policy))
}

func TestUpdateOnlyWhilePending(t *testing.T) {
	policy := DefaultApprovalPolicy()
	expense := newTestExpense(t, 500)

	err := expense.Update(ExpenseCategorySupplies, valueobject.NewMoneyPHPFromFloat(750), "Cleaning supplies", time.Now())
	require.NoError(t, err)
	assert.Equal(t, ExpenseCategorySupplies, expense.Category)

	require.NoError(t, expense.Approve(uuid.New(), identity.RoleManager, policy))
	err = expense.Update(ExpenseCategoryOther, valueobject.NewMoneyPHPFromFloat(1), "x", time.Now())
	assert.Error(t, err)
}
