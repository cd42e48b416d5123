// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a single login credential for a user.
// Today the only provider is email/password; the record shape leaves room
// for linked external providers without touching the users table.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, e.g. "email".
	ProviderUserID string    // The identifier within the provider (the email address for "email").
	PasswordHash   string    // Stores the bcrypt-hashed password when the Provider is "email".
	CreatedAt      time.Time
}

// ProviderTypeEmail is the email/password credential provider.
const ProviderTypeEmail = "email"

// Session represents a long-lived, authorized login session on one device.
// The raw refresh token never touches the database; only its SHA-256 hash is
// stored for comparison. Sessions support multi-device listing and selective
// revocation.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	UserAgent string    // Device information captured at login.
	IP        string    // Remote address captured at login.
	ExpiresAt time.Time // When this session's refresh token becomes invalid.
	CreatedAt time.Time // When the user logged in on this device.
}

// Expired reports whether the session's refresh token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
