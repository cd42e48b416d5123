// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleCustomer indicates a storefront customer.
	RoleCustomer Role = "customer"
	// RoleDoctor indicates a doctor-portal account.
	RoleDoctor Role = "doctor"
	// RoleInfluencer indicates an influencer-portal account.
	RoleInfluencer Role = "influencer"
	// RoleAdmin indicates a dashboard administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates an administrator with full privileges.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDoctor, RoleInfluencer, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries dashboard administration rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether any of the given roles is present.
// This is the single capability check every route gate goes through,
// so the accepted role sets cannot drift between declarations.
func (rs Roles) ContainsAny(roles ...Role) bool {
	for _, role := range roles {
		if slices.Contains(rs, role) {
			return true
		}
	}

	return false
}

// HasAdmin reports whether the set carries dashboard administration rights.
func (rs Roles) HasAdmin() bool {
	return rs.ContainsAny(RoleAdmin, RoleSuperAdmin)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
