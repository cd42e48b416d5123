package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks follow-up progress on a captured lead.
type LeadStatus string

const (
	// LeadStatusNew is an untouched lead.
	LeadStatusNew LeadStatus = "new"
	// LeadStatusContacted is a lead someone has reached out to.
	LeadStatusContacted LeadStatus = "contacted"
	// LeadStatusConverted is a lead that became a customer.
	LeadStatusConverted LeadStatus = "converted"
)

// Lead is a contact captured from a storefront or campaign form.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Source    string // e.g. "landing", "campaign:monsoon".
	Message   string
	Status    LeadStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
