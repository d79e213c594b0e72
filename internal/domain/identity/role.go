package identity

// Role represents a user's role within the market administration.
// The role list is deliberately configuration-friendly: thresholds and
// allowed transitions are looked up in policy tables, not switch
// statements, so deployments can extend the set.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleManager      Role = "Manager"
	RoleMarketMaster Role = "MarketMaster"
	RoleExecutive    Role = "Executive"
	RoleFinanceHead  Role = "FinanceHead"
)

// IsValid checks if the role is one of the built-in roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMarketMaster, RoleExecutive, RoleFinanceHead:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// AllRoles returns the built-in role set
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleMarketMaster, RoleExecutive, RoleFinanceHead}
}
