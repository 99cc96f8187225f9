package models

import "time"

// Photo is a gallery image, optionally tied to a booking.
type Photo struct {
	ID         string    `bson:"id" json:"id"`
	BookingRef string    `bson:"booking_ref,omitempty" json:"bookingRef,omitempty"`
	Caption    string    `bson:"caption,omitempty" json:"caption,omitempty"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	URL        string    `bson:"url" json:"url"`
	PublicID   string    `bson:"public_id" json:"-"` // storage identifier, not exposed
	UploadedBy string    `bson:"uploaded_by,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
