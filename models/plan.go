package models

import "time"

// Plan is a priced package (duration, features) selectable for a booking.
type Plan struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"` // unique
	Description   string    `bson:"description" json:"description"`
	Price         float64   `bson:"price" json:"price"`
	DurationHours int       `bson:"duration_hours" json:"durationHours"`
	Features      []string  `bson:"features" json:"features"`
	IsActive      bool      `bson:"is_active" json:"isActive"`
	DisplayOrder  int       `bson:"display_order" json:"displayOrder"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
