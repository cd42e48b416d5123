package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrLeadNotFound is returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Status entity.LeadStatus // Zero value means any status.
	Source string
	Limit  int
	Offset int
}

// LeadRepository defines lead persistence operations.
type LeadRepository interface {
	// FindByID retrieves a lead by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// List retrieves leads matching the filter, newest first.
	List(ctx context.Context, filter LeadFilter) ([]*entity.Lead, error)

	// Create persists a new lead.
	Create(ctx context.Context, lead *entity.Lead) error

	// Update modifies an existing lead (status progression).
	Update(ctx context.Context, lead *entity.Lead) error

	// Delete removes a lead by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
