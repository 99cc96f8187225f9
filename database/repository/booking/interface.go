package bookingRepo

import (
	"context"
	"errors"

	"venuely/models"
)

// ErrNotFound is returned when no booking matches the given identifier.
var ErrNotFound = errors.New("booking not found")

// ErrSlotUnavailable is returned when the conditional slot update matches
// nothing, i.e. the slot was blocked or full at commit time.
var ErrSlotUnavailable = errors.New("slot has no remaining capacity")

// ErrStatusChanged is returned when a conditional status update finds the
// booking no longer in the expected state.
var ErrStatusChanged = errors.New("booking status changed concurrently")

// ListFilter narrows booking listings.
type ListFilter struct {
	Status    string
	EventDate string
}

// BookingRepository defines data access for bookings. Creation and
// cancellation are the only operations that touch slot capacity, and they do
// so atomically with the booking write.
type BookingRepository interface {
	// CreateWithSlotReservation inserts the booking and increments the
	// slot's counter in one transaction. The increment is conditional on
	// remaining capacity; ErrSlotUnavailable aborts the whole operation.
	CreateWithSlotReservation(ctx context.Context, booking *models.Booking) error

	// CancelWithSlotRelease marks the booking cancelled and decrements the
	// slot's counter in one transaction. The status update is conditional
	// on the booking still holding capacity, so a second cancel can never
	// double-decrement; it fails with ErrStatusChanged.
	CancelWithSlotRelease(ctx context.Context, booking *models.Booking) error

	// UpdateStatus moves the booking from one non-releasing status to
	// another, conditional on the current value.
	UpdateStatus(ctx context.Context, id, from, to string) error

	UpdatePayment(ctx context.Context, id, paymentStatus string, advancePaid float64) error
	Delete(ctx context.Context, id string) error

	GetByID(id string) (*models.Booking, error)
	GetByRef(ref string) (*models.Booking, error)
	GetAll(filter ListFilter) ([]models.Booking, error)
	GetByEventDate(date string) ([]models.Booking, error)
	CountActiveBySlot(slotID string) (int64, error)
	Stats(today, weekEnd string) (*models.BookingStats, error)
}
