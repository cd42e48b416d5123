// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitReviewInput defines the data required to submit a product review.
type SubmitReviewInput struct {
	ProductID uuid.UUID `validate:"required"`
	UserID    uuid.UUID
	Rating    int `validate:"min=1,max=5"`
	Comment   string
}

// ReviewUsecase defines the interface for review operations. Submissions are
// held unapproved; only approved reviews reach the public product page.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, includeUnapproved bool) ([]*entity.Review, error)
	ListReviews(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	ModerateReview(ctx context.Context, id uuid.UUID, approved bool) (*entity.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
