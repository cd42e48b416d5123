// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput defines the data required to create or update a product.
type ProductInput struct {
	Name          string `validate:"required"`
	Slug          string `validate:"required"`
	Description   string
	Category      string
	Price         int64 `validate:"gt=0"`
	MRP           int64 `validate:"gte=0"`
	StockQuantity int   `validate:"gte=0"`
	Status        entity.ProductStatus
	Images        []string
}

// ListProductsInput narrows catalog listings.
type ListProductsInput struct {
	Category string
	Status   entity.ProductStatus
	Search   string
	Limit    int
	Offset   int
}

// --- Output DTOs ---

// ListProductsOutput returns one page of products plus the unpaginated total.
type ListProductsOutput struct {
	Products []*entity.Product
	Total    int64
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context, input *ListProductsInput) (int64, error)
}
