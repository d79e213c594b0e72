package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/shared"
)

// ApprovalPolicy decides which roles may approve an expense and up to
// what amount. A nil threshold means the role may approve any amount.
// Roles absent from the table cannot approve at all.
type ApprovalPolicy struct {
	thresholds map[identity.Role]*decimal.Decimal

	checkRequestRoles map[identity.Role]bool
	releaseRoles      map[identity.Role]bool
}

// DefaultApprovalPolicy returns the standard market-office policy:
// managers approve up to 10,000 PHP, market masters up to 50,000 PHP,
// executives and the finance head without limit. Check requests are
// issued by the finance head and releases authorized by an executive.
func DefaultApprovalPolicy() *ApprovalPolicy {
	managerLimit := decimal.NewFromInt(10000)
	marketMasterLimit := decimal.NewFromInt(50000)

	return &ApprovalPolicy{
		thresholds: map[identity.Role]*decimal.Decimal{
			identity.RoleManager:      &managerLimit,
			identity.RoleMarketMaster: &marketMasterLimit,
			identity.RoleExecutive:    nil,
			identity.RoleFinanceHead:  nil,
		},
		checkRequestRoles: map[identity.Role]bool{
			identity.RoleFinanceHead: true,
		},
		releaseRoles: map[identity.Role]bool{
			identity.RoleExecutive: true,
		},
	}
}

// NewApprovalPolicy builds a policy from explicit tables, typically
// loaded from configuration. Thresholds map roles to their approval
// limit; a nil value grants unlimited approval.
func NewApprovalPolicy(
	thresholds map[identity.Role]*decimal.Decimal,
	checkRequestRoles []identity.Role,
	releaseRoles []identity.Role,
) (*ApprovalPolicy, error) {
	if len(thresholds) == 0 {
		return nil, shared.NewDomainError("INVALID_POLICY", "Approval policy must grant at least one role")
	}
	for role := range thresholds {
		if !role.IsValid() {
			return nil, shared.NewDomainError("INVALID_POLICY", "Unknown role in approval policy: "+string(role))
		}
	}

	policy := &ApprovalPolicy{
		thresholds:        make(map[identity.Role]*decimal.Decimal, len(thresholds)),
		checkRequestRoles: make(map[identity.Role]bool, len(checkRequestRoles)),
		releaseRoles:      make(map[identity.Role]bool, len(releaseRoles)),
	}
	for role, limit := range thresholds {
		if limit != nil {
			v := *limit
			policy.thresholds[role] = &v
		} else {
			policy.thresholds[role] = nil
		}
	}
	for _, role := range checkRequestRoles {
		if !role.IsValid() {
			return nil, shared.NewDomainError("INVALID_POLICY", "Unknown role in check-request table: "+string(role))
		}
		policy.checkRequestRoles[role] = true
	}
	for _, role := range releaseRoles {
		if !role.IsValid() {
			return nil, shared.NewDomainError("INVALID_POLICY", "Unknown role in release table: "+string(role))
		}
		policy.releaseRoles[role] = true
	}

	return policy, nil
}

// CanApprove reports whether the role may approve the given amount.
// The limit is inclusive: an amount exactly at the threshold passes.
func (p *ApprovalPolicy) CanApprove(role identity.Role, amount decimal.Decimal) error {
	limit, ok := p.thresholds[role]
	if !ok {
		return shared.NewDomainError("APPROVAL_NOT_PERMITTED",
			fmt.Sprintf("Role %s cannot approve expenses", role))
	}
	if limit != nil && amount.GreaterThan(*limit) {
		return shared.NewDomainError(shared.CodeThresholdExceeded,
			fmt.Sprintf("Amount %s exceeds the %s approval limit of %s", amount, role, limit))
	}
	return nil
}

// CanGenerateCheckRequest reports whether the role may generate a check request
func (p *ApprovalPolicy) CanGenerateCheckRequest(role identity.Role) error {
	if !p.checkRequestRoles[role] {
		return shared.NewDomainError("CHECK_REQUEST_NOT_PERMITTED",
			fmt.Sprintf("Role %s cannot generate check requests", role))
	}
	return nil
}

// CanAuthorizeRelease reports whether the role may authorize a payment release
func (p *ApprovalPolicy) CanAuthorizeRelease(role identity.Role) error {
	if !p.releaseRoles[role] {
		return shared.NewDomainError("RELEASE_NOT_PERMITTED",
			fmt.Sprintf("Role %s cannot authorize payment release", role))
	}
	return nil
}

// ApprovalLimit returns the threshold for a role and whether the role
// may approve at all. A nil decimal with ok=true means unlimited.
func (p *ApprovalPolicy) ApprovalLimit(role identity.Role) (*decimal.Decimal, bool) {
	limit, ok := p.thresholds[role]
	return limit, ok
}
