package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is one entry of a user's address book.
// Invariant: at most one address per user has IsDefault set; the switch is
// done transactionally (unset all, then set one).
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID // The owning user.
	Label      string    // e.g. "home", "clinic".
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
