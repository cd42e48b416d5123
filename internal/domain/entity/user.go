// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus captures whether an account may authenticate.
// Accounts are disabled, never hard-deleted.
type UserStatus string

const (
	// UserStatusActive marks an account that may log in.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive marks a soft-disabled account.
	UserStatusInactive UserStatus = "inactive"
)

// User is the core entity in the system, representing a unique "person" or
// "account". All portals share this single record; role-specific data hangs
// off it as optional profiles.
type User struct {
	ID                uuid.UUID          // The unique identifier for the user.
	Email             string             // Primary contact email, used as the login identifier.
	Name              string             // Display name or real name.
	Phone             string             // Optional contact number.
	Status            UserStatus         // active or inactive; inactive accounts cannot authenticate.
	CustomerProfile   *CustomerProfile   // Present when the person shops on the storefront.
	DoctorProfile     *DoctorProfile     // Present when the person holds a doctor-portal account.
	InfluencerProfile *InfluencerProfile // Present when the person holds an influencer-portal account.
	AdminProfile      *AdminProfile      // Present when the person administers the dashboard.
	Addresses         []*Address         // The user's address book. At most one entry is the default.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Roles derives the role set from the attached profiles.
func (u *User) Roles() Roles {
	var roles Roles
	if u.CustomerProfile != nil {
		roles = append(roles, RoleCustomer)
	}
	if u.DoctorProfile != nil {
		roles = append(roles, RoleDoctor)
	}
	if u.InfluencerProfile != nil {
		roles = append(roles, RoleInfluencer)
	}
	if u.AdminProfile != nil {
		if u.AdminProfile.Super {
			roles = append(roles, RoleSuperAdmin)
		} else {
			roles = append(roles, RoleAdmin)
		}
	}

	return roles
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// DefaultAddress returns the address marked default, or nil when none is set.
func (u *User) DefaultAddress() *Address {
	for _, addr := range u.Addresses {
		if addr.IsDefault {
			return addr
		}
	}

	return nil
}

// CustomerProfile holds data specific to the storefront customer role.
type CustomerProfile struct {
	UserID    uuid.UUID // Foreign key that links this profile to a core User entity.
	UpdatedAt time.Time
}

// DoctorProfile holds data specific to the doctor-portal role.
type DoctorProfile struct {
	UserID         uuid.UUID
	Specialization string // Medical specialization shown to patients.
	LicenseNumber  string // Registration/license number, unique per doctor.
	UpdatedAt      time.Time
}

// InfluencerProfile holds data specific to the influencer-portal role.
type InfluencerProfile struct {
	UserID         uuid.UUID
	ReferralCode   string  // Unique code attributed on orders they drive.
	CommissionRate float64 // Fraction of the attributed order total, e.g. 0.05.
	UpdatedAt      time.Time
}

// AdminProfile holds data specific to dashboard administrators.
type AdminProfile struct {
	UserID    uuid.UUID
	Super     bool // Super admins may manage other admins.
	UpdatedAt time.Time
}
