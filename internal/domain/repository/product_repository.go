package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a guarded decrement would take stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Status   entity.ProductStatus // Zero value means any status.
	Search   string               // Matches name, case-insensitive.
	Limit    int
	Offset   int
}

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its unique slug (public lookup).
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Create persists a new product. Duplicate slugs surface as a conflict.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from stock, failing with
	// ErrInsufficientStock when the guard `stock_quantity >= quantity` does
	// not hold. Never leaves stock negative under concurrent checkouts.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock atomically returns quantity to stock (order cancellation).
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
