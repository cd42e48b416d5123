package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Prices are stored in paise.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(100);index"`
	PriceAmount   int64     `gorm:"not null"`
	PriceMRP      int64     `gorm:"column:price_mrp;not null"`
	StockQuantity int       `gorm:"not null;default:0;check:stock_quantity >= 0"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'"`
	Images        []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
