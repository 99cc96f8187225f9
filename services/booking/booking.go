package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuely/apperr"
	addonRepo "venuely/database/repository/addon"
	bookingRepo "venuely/database/repository/booking"
	planRepo "venuely/database/repository/plan"
	slotRepo "venuely/database/repository/slot"
	"venuely/models"
	"venuely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Create validates the submission, snapshots plan and addon prices, and
// persists the booking together with the slot capacity reservation in one
// atomic unit. Notifications are fired after commit and never affect the
// result.
func (s *DefaultBookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if _, err := time.Parse(dateLayout, req.EventDate); err != nil {
		return nil, apperr.ValidationError{Message: fmt.Sprintf("invalid event date %q, expected YYYY-MM-DD", req.EventDate)}
	}
	// Lexicographic comparison of zero-padded dates keeps the policy on the
	// local calendar day.
	if req.EventDate < time.Now().Format(dateLayout) {
		return nil, apperr.ValidationError{Message: "event date is in the past"}
	}

	plan, err := s.PlanRepo.GetByID(req.PlanID)
	if err != nil {
		if errors.Is(err, planRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "plan", Ref: req.PlanID}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	if !plan.IsActive {
		return nil, apperr.ValidationError{Message: fmt.Sprintf("plan %q is not active", plan.Name)}
	}

	slot, err := s.SlotRepo.GetByID(req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "slot", Ref: req.SlotID}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	if slot.Date != req.EventDate {
		return nil, apperr.ValidationError{Message: "slot does not fall on the requested event date"}
	}
	// Early rejection; the conditional update at commit time is the
	// authoritative check.
	if !slot.Bookable() {
		return nil, apperr.ConflictError{Message: fmt.Sprintf("slot %q is fully booked", slot.Name)}
	}

	selections, err := s.resolveAddons(req.Addons)
	if err != nil {
		return nil, err
	}

	total := plan.Price
	for _, sel := range selections {
		total += sel.Price * float64(sel.Quantity)
	}

	now := time.Now()
	b := &models.Booking{
		ID:              uuid.New().String(),
		BookingRef:      NewBookingRef(now),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		EventDate:       req.EventDate,
		SlotID:          slot.ID,
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		PlanPrice:       plan.Price,
		Addons:          selections,
		TotalAmount:     total,
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.Repo.CreateWithSlotReservation(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
			return nil, apperr.ConflictError{Message: fmt.Sprintf("slot %q filled up before the booking could be committed", slot.Name)}
		}
		return nil, apperr.PersistenceError{Err: err}
	}

	s.invalidateCaches(slot.Date)
	s.notify(func(ctx context.Context) error {
		return s.Notifier.BookingCreated(ctx, b)
	})

	return b, nil
}

// resolveAddons normalizes the raw addon payload and resolves every entry
// against the catalog, snapshotting the catalog price rather than trusting
// any client-sent one. Entries referencing the same addon are merged, so
// the per-booking quantity cap applies to the total and cannot be split
// across duplicates.
func (s *DefaultBookingService) resolveAddons(raw interface{}) ([]models.AddonSelection, error) {
	selections := NormalizeAddonSelections(raw)

	resolved := make([]models.AddonSelection, 0, len(selections))
	index := make(map[string]int, len(selections))
	maxByID := make(map[string]int, len(selections))
	for _, sel := range selections {
		var (
			addon *models.Addon
			err   error
		)
		if sel.AddonID != "" {
			addon, err = s.AddonRepo.GetByID(sel.AddonID)
		} else {
			addon, err = s.AddonRepo.GetByName(sel.Name)
		}
		if err != nil {
			if errors.Is(err, addonRepo.ErrNotFound) {
				ref := sel.Name
				if ref == "" {
					ref = sel.AddonID
				}
				return nil, apperr.NotFoundError{Resource: "addon", Ref: ref}
			}
			return nil, apperr.PersistenceError{Err: err}
		}
		if !addon.IsAvailable {
			return nil, apperr.ValidationError{Message: fmt.Sprintf("addon %q is not available", addon.Name)}
		}

		if i, ok := index[addon.ID]; ok {
			resolved[i].Quantity += sel.Quantity
			continue
		}
		index[addon.ID] = len(resolved)
		maxByID[addon.ID] = addon.MaxQuantity
		resolved = append(resolved, models.AddonSelection{
			AddonID:  addon.ID,
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: sel.Quantity,
		})
	}

	for _, sel := range resolved {
		if max := maxByID[sel.AddonID]; max > 0 && sel.Quantity > max {
			return nil, apperr.ValidationError{Message: fmt.Sprintf("addon %q allows at most %d per booking", sel.Name, max)}
		}
	}
	return resolved, nil
}

// GetByID returns a single booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "booking", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return b, nil
}

// List returns bookings narrowed by the optional filter.
func (s *DefaultBookingService) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(filter)
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return bookings, nil
}

// Today returns the bookings whose event date is today.
func (s *DefaultBookingService) Today() ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEventDate(time.Now().Format(dateLayout))
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return bookings, nil
}

// notify runs a notification callback in the background, logging failures.
// Booking commits never wait on or fail because of notification delivery.
func (s *DefaultBookingService) notify(fn func(ctx context.Context) error) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			utils.GetLogger().Warn("booking notification failed", zap.Error(err))
		}
	}()
}

// invalidateCaches drops cached listings that a booking write makes stale.
func (s *DefaultBookingService) invalidateCaches(slotDate string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, availabilityCacheKey(slotDate), statsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("cache invalidation failed", zap.Error(err))
	}
}

func availabilityCacheKey(date string) string {
	return "slots:avail:" + date
}
