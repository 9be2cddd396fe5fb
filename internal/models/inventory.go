// internal/models/inventory.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is one product's offer at one store.
// Several items may exist for the same product and store.
type InventoryItem struct {
	BaseModel
	ProductID          uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	StoreID            uuid.UUID  `json:"store_id" gorm:"type:uuid;not null;index"`
	Price              float64    `json:"price" gorm:"not null"`
	Quantity           int        `json:"quantity" gorm:"not null"`
	OriginalPrice      *float64   `json:"original_price"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	OfferValidUntil    *time.Time `json:"offer_valid_until"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// OfferActive is derived on read; an expired discount reports false.
	OfferActive bool `json:"offer_active" gorm:"-"`

	// Relationships. No foreign key constraints: deleting a product or store
	// leaves its inventory rows behind.
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Store   *Store   `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

// HasActiveOffer reports whether a discount applies at the given time.
func (i *InventoryItem) HasActiveOffer(at time.Time) bool {
	if i.DiscountPercentage == nil || *i.DiscountPercentage == 0 {
		return false
	}
	return i.OfferValidUntil == nil || at.Before(*i.OfferValidUntil)
}
