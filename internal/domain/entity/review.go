package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating on a product. Reviews are held for moderation;
// only approved ones are served on the public product page.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int // 1 to 5.
	Comment   string
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
