package models

import "time"

// Addon is an optional priced extra attachable to a booking.
type Addon struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Price        float64   `bson:"price" json:"price"`
	Category     string    `bson:"category" json:"category"` // e.g., "decoration", "food"
	IsAvailable  bool      `bson:"is_available" json:"isAvailable"`
	MaxQuantity  int       `bson:"max_quantity" json:"maxQuantity"` // 0 means unlimited
	DisplayOrder int       `bson:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
