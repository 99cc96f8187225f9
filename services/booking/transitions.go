package booking

import (
	"context"
	"errors"
	"fmt"

	"venuely/apperr"
	bookingRepo "venuely/database/repository/booking"
	"venuely/models"
)

// allowedTransitions is the booking state machine. Completed and cancelled
// have no outgoing edges.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies an admin status transition. Transitions into
// cancelled release the slot capacity in the same unit of work; everything
// else is a conditional status swap. Illegal transitions never touch the
// stored booking.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, apperr.ValidationError{Message: fmt.Sprintf("unknown booking status %q", newStatus)}
	}

	b, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(b.Status, newStatus) {
		return nil, apperr.InvalidTransitionError{From: b.Status, To: newStatus}
	}
	// Confirmation implies the customer has started paying.
	if newStatus == models.BookingStatusConfirmed && b.PaymentStatus == models.PaymentStatusPending {
		return nil, apperr.ConflictError{Message: "booking cannot be confirmed before a payment is recorded"}
	}

	if newStatus == models.BookingStatusCancelled {
		if err := s.Repo.CancelWithSlotRelease(ctx, b); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return nil, apperr.ConflictError{Message: "booking status changed concurrently"}
			}
			return nil, apperr.PersistenceError{Err: err}
		}
		s.invalidateCaches(b.EventDate)
		s.notify(func(ctx context.Context) error {
			return s.Notifier.BookingCancelled(ctx, b)
		})
	} else {
		if err := s.Repo.UpdateStatus(ctx, id, b.Status, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return nil, apperr.ConflictError{Message: "booking status changed concurrently"}
			}
			return nil, apperr.PersistenceError{Err: err}
		}
		s.invalidateCaches(b.EventDate)
	}

	b.Status = newStatus
	return b, nil
}

// UpdatePayment records an admin payment update. Marking a booking paid
// with no explicit advance settles the full amount.
func (s *DefaultBookingService) UpdatePayment(ctx context.Context, id, paymentStatus string, advancePaid float64) (*models.Booking, error) {
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, apperr.ValidationError{Message: fmt.Sprintf("unknown payment status %q", paymentStatus)}
	}
	if advancePaid < 0 {
		return nil, apperr.ValidationError{Message: "advance paid cannot be negative"}
	}

	b, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if advancePaid > b.TotalAmount {
		return nil, apperr.ValidationError{Message: "advance paid exceeds the booking amount"}
	}
	if paymentStatus == models.PaymentStatusPaid && advancePaid == 0 {
		advancePaid = b.TotalAmount
	}

	if err := s.Repo.UpdatePayment(ctx, id, paymentStatus, advancePaid); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "booking", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	s.invalidateCaches(b.EventDate)

	b.PaymentStatus = paymentStatus
	b.AdvancePaid = advancePaid
	return b, nil
}

// Delete removes a booking record. A booking still holding slot capacity is
// cancelled first so removal always releases the slot.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	b, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if b.HoldsCapacity() {
		if err := s.Repo.CancelWithSlotRelease(ctx, b); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return apperr.ConflictError{Message: "booking status changed concurrently"}
			}
			return apperr.PersistenceError{Err: err}
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return apperr.NotFoundError{Resource: "booking", Ref: id}
		}
		return apperr.PersistenceError{Err: err}
	}
	s.invalidateCaches(b.EventDate)
	return nil
}
