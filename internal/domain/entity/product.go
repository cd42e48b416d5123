package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus controls storefront visibility.
type ProductStatus string

const (
	// ProductStatusActive exposes the product on the storefront.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusInactive hides the product without deleting it.
	ProductStatusInactive ProductStatus = "inactive"
)

// Price carries the selling amount alongside the strike-through MRP.
// Amounts are in the smallest currency unit (paise).
type Price struct {
	Amount int64
	MRP    int64
}

// Product is a single catalog item.
// Invariants: Slug is unique (public lookup key), StockQuantity never goes
// negative; decrements happen through a guarded conditional update.
type Product struct {
	ID            uuid.UUID
	Name          string
	Slug          string // Unique, URL-safe public identifier.
	Description   string
	Category      string
	Price         Price
	StockQuantity int
	Status        ProductStatus
	Images        []string // Stored file URLs.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InStock reports whether the requested quantity can currently be fulfilled.
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
