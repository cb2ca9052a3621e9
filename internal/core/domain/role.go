package domain

// Role identifies which portal surface a user may reach.
type Role string

const (
	RoleSalesperson Role = "SALESPERSON"
	RoleMechanic    Role = "MECHANIC"
	RoleCustomer    Role = "CUSTOMER"

	// RoleUnknown marks an authenticated session whose role is missing or
	// unrecognized. Role-gated routes deny it; role-neutral routes stay
	// reachable.
	RoleUnknown Role = ""
)

// ParseRole maps an upstream role string onto the closed role set. Anything
// outside the three known roles collapses to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSalesperson, RoleMechanic, RoleCustomer:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Known reports whether the role is one of the three recognized roles.
func (r Role) Known() bool {
	return r != RoleUnknown
}
