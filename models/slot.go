package models

import "time"

// Slot represents a bookable time window on a date with finite capacity.
type Slot struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`                         // e.g., "Morning", "Evening"
	Date            string    `bson:"date" json:"date"`                         // "YYYY-MM-DD"
	StartTime       string    `bson:"start_time" json:"startTime"`              // "HH:MM" local wall clock
	EndTime         string    `bson:"end_time" json:"endTime"`                  // "HH:MM" local wall clock
	IsAvailable     bool      `bson:"is_available" json:"isAvailable"`          // admin kill-switch
	MaxCapacity     int       `bson:"max_capacity" json:"maxCapacity"`          // total bookings the window can hold
	CurrentBookings int       `bson:"current_bookings" json:"currentBookings"`  // bookings currently holding the slot
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Bookable reports whether the slot can accept one more booking. This is the
// single availability predicate; booking admission must not bypass it.
func (s *Slot) Bookable() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxCapacity
}

// Remaining returns the spare capacity of the slot, never negative.
func (s *Slot) Remaining() int {
	if r := s.MaxCapacity - s.CurrentBookings; r > 0 {
		return r
	}
	return 0
}
