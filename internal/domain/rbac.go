package domain

// Role names mirror the users table. Kept here so capability resolution does
// not depend on the persistence layer.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleCashier = "CASHIER"
	RoleWaiter  = "WAITER"
	RoleStock   = "STOCK"
)

// Capabilities is the resolved permission set for one actor. It is computed
// once per request at the HTTP boundary; services branch on booleans and
// never inspect role names.
type Capabilities struct {
	CanManageUsers    bool
	CanManageSettings bool
	CanManageProducts bool
	CanCancelItems    bool
	CanApplyDiscount  bool
	CanOperateCashier bool
	CanManageStock    bool
	CanViewAudit      bool

	// AdminOverride unlocks transitions and mutations normally blocked by
	// status, except PAID -> CANCELED which stays forbidden for everyone.
	AdminOverride bool
}

// CapabilitiesForRole maps a role to its capability set. Every role can open
// tabs and add items; the booleans gate everything beyond that.
func CapabilitiesForRole(role string) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{
			CanManageUsers:    true,
			CanManageSettings: true,
			CanManageProducts: true,
			CanCancelItems:    true,
			CanApplyDiscount:  true,
			CanOperateCashier: true,
			CanManageStock:    true,
			CanViewAudit:      true,
			AdminOverride:     true,
		}
	case RoleManager:
		return Capabilities{
			CanManageProducts: true,
			CanCancelItems:    true,
			CanApplyDiscount:  true,
			CanOperateCashier: true,
			CanManageStock:    true,
			CanViewAudit:      true,
		}
	case RoleCashier:
		return Capabilities{
			CanCancelItems:    true,
			CanApplyDiscount:  true,
			CanOperateCashier: true,
		}
	case RoleStock:
		return Capabilities{CanManageStock: true}
	default: // WAITER and unknown roles: open tabs and add items only
		return Capabilities{}
	}
}
