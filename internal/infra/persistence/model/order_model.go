package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Amounts are stored in paise.
type OrderModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subtotal       int64      `gorm:"not null"`
	Discount       int64      `gorm:"not null;default:0"`
	Total          int64      `gorm:"not null"`
	CouponCode     string     `gorm:"type:varchar(50)"`
	ReferralCode   string     `gorm:"type:varchar(50);index"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	AddressID      *uuid.UUID `gorm:"type:uuid"`
	PaymentOrderID string     `gorm:"type:varchar(100);index"`
	PaymentID      string     `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and unit price are
// copied from the product at checkout.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
