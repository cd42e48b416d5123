// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CaptureLeadInput defines the data a storefront or campaign form submits.
type CaptureLeadInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Phone   string
	Source  string
	Message string
}

// ListLeadsInput narrows lead listings.
type ListLeadsInput struct {
	Status entity.LeadStatus
	Source string
	Limit  int
	Offset int
}

// LeadUsecase defines the interface for lead operations. Capture is public;
// the rest is admin-only.
type LeadUsecase interface {
	CaptureLead(ctx context.Context, input *CaptureLeadInput) (*entity.Lead, error)
	ListLeads(ctx context.Context, input *ListLeadsInput) ([]*entity.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	SetLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
}
