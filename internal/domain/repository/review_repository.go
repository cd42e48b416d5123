package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProductID retrieves reviews for a product. When approvedOnly is
	// set, unmoderated reviews are excluded (public product page).
	FindByProductID(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]*entity.Review, error)

	// List retrieves all reviews, newest first (admin moderation queue).
	List(ctx context.Context, limit, offset int) ([]*entity.Review, error)

	// Create persists a new review, unapproved.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review (moderation, edits).
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
