package lending

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

func newTestApplication(t *testing.T) *LoanApplication {
	t.Helper()
	application, err := NewLoanApplication(
		"LN-2026-0001",
		uuid.New(),
		valueobject.NewMoneyPHPFromFloat(15000),
		12,
		"Additional stock for fiesta season",
	)
	require.NoError(t, err)
	return application
}

func TestNewLoanApplication(t *testing.T) {
	application := newTestApplication(t)

	assert.Equal(t, LoanStatusPending, application.Status)
	assert.True(t, application.IsPending())
	assert.Len(t, application.GetDomainEvents(), 1)
}

func TestNewLoanApplicationValidation(t *testing.T) {
	amount := valueobject.NewMoneyPHPFromFloat(15000)

	_, err := NewLoanApplication("", uuid.New(), amount, 12, "stock")
	assert.Error(t, err)

	_, err = NewLoanApplication("LN-1", uuid.Nil, amount, 12, "stock")
	assert.Error(t, err)

	_, err = NewLoanApplication("LN-1", uuid.New(), valueobject.ZeroPHP(), 12, "stock")
	assert.Error(t, err)

	_, err = NewLoanApplication("LN-1", uuid.New(), amount, 0, "stock")
	assert.Error(t, err)

	_, err = NewLoanApplication("LN-1", uuid.New(), amount, 61, "stock")
	assert.Error(t, err)

	_, err = NewLoanApplication("LN-1", uuid.New(), amount, 12, "")
	assert.Error(t, err)
}

func TestApproveLoan(t *testing.T) {
	application := newTestApplication(t)
	decider := uuid.New()

	require.NoError(t, application.Approve(decider))
	assert.Equal(t, LoanStatusApproved, application.Status)
	require.NotNil(t, application.DecidedBy)
	assert.Equal(t, decider, *application.DecidedBy)

	err := application.Approve(decider)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidTransition, domainErr.Code)
}

func TestRejectLoanReasonOptional(t *testing.T) {
	// Unlike lease rejection, a loan decline does not require a reason.
	application := newTestApplication(t)
	require.NoError(t, application.Reject(uuid.New(), ""))
	assert.Equal(t, LoanStatusRejected, application.Status)
	assert.Empty(t, application.RejectionReason)

	other := newTestApplication(t)
	require.NoError(t, other.Reject(uuid.New(), "outstanding balance"))
	assert.Equal(t, "outstanding balance", other.RejectionReason)
}

func TestDecisionIsTerminal(t *testing.T) {
	application := newTestApplication(t)
	require.NoError(t, application.Reject(uuid.New(), ""))

	assert.Error(t, application.Approve(uuid.New()))
	assert.Error(t, application.Reject(uuid.New(), "again"))
}
