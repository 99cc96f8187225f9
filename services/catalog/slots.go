package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"venuely/apperr"
	slotRepo "venuely/database/repository/slot"
	"venuely/models"
	"venuely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func validateSlotTimes(req *models.UpsertSlotRequest) error {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return apperr.ValidationError{Message: fmt.Sprintf("invalid slot date %q, expected YYYY-MM-DD", req.Date)}
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return apperr.ValidationError{Message: fmt.Sprintf("invalid start time %q, expected HH:MM", req.StartTime)}
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return apperr.ValidationError{Message: fmt.Sprintf("invalid end time %q, expected HH:MM", req.EndTime)}
	}
	if !end.After(start) {
		return apperr.ValidationError{Message: "slot end time must be after its start time"}
	}
	return nil
}

// CreateSlot adds a new bookable window.
func (s *DefaultCatalogService) CreateSlot(req *models.UpsertSlotRequest) (*models.Slot, error) {
	if err := validateSlotTimes(req); err != nil {
		return nil, err
	}
	if req.MaxCapacity < 0 {
		return nil, apperr.ValidationError{Message: "slot capacity cannot be negative"}
	}

	slot := &models.Slot{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		MaxCapacity: req.MaxCapacity,
	}
	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}

	if err := s.Slots.Create(slot); err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	s.invalidateAvailability(slot.Date)
	return slot, nil
}

// UpdateSlot modifies an existing slot. Capacity can never shrink below the
// bookings already holding it.
func (s *DefaultCatalogService) UpdateSlot(id string, req *models.UpsertSlotRequest) (*models.Slot, error) {
	if err := validateSlotTimes(req); err != nil {
		return nil, err
	}

	slot, err := s.GetSlot(id)
	if err != nil {
		return nil, err
	}
	// Early rejection; the conditional update in the repository is the
	// authoritative guard against concurrent booking commits.
	if req.MaxCapacity < slot.CurrentBookings {
		return nil, apperr.ConflictError{
			Message: fmt.Sprintf("slot already holds %d bookings, capacity cannot drop below that", slot.CurrentBookings),
		}
	}

	oldDate := slot.Date
	slot.Name = req.Name
	slot.Date = req.Date
	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime
	slot.MaxCapacity = req.MaxCapacity
	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}

	if err := s.Slots.Update(slot); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "slot", Ref: id}
		}
		if errors.Is(err, slotRepo.ErrCapacityConflict) {
			return nil, apperr.ConflictError{
				Message: "slot bookings grew past the requested capacity, reload and retry",
			}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	s.invalidateAvailability(oldDate)
	s.invalidateAvailability(slot.Date)
	return slot, nil
}

// DeleteSlot removes a slot. Refused while any pending or confirmed booking
// still references it.
func (s *DefaultCatalogService) DeleteSlot(id string) error {
	slot, err := s.GetSlot(id)
	if err != nil {
		return err
	}

	active, err := s.Bookings.CountActiveBySlot(id)
	if err != nil {
		return apperr.PersistenceError{Err: err}
	}
	if active > 0 {
		return apperr.ConflictError{
			Message: fmt.Sprintf("slot has %d active bookings and cannot be deleted", active),
		}
	}

	if err := s.Slots.Delete(id); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return apperr.NotFoundError{Resource: "slot", Ref: id}
		}
		return apperr.PersistenceError{Err: err}
	}
	s.invalidateAvailability(slot.Date)
	return nil
}

// GetSlot returns a single slot.
func (s *DefaultCatalogService) GetSlot(id string) (*models.Slot, error) {
	slot, err := s.Slots.GetByID(id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "slot", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return slot, nil
}

// ListSlots returns every slot, for the admin dashboard.
func (s *DefaultCatalogService) ListSlots() ([]models.Slot, error) {
	slots, err := s.Slots.GetAll()
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return slots, nil
}

// AvailableSlots returns the bookable slots for a date. Dates in the past
// list as empty; the capacity predicate itself stays in Slot.Bookable.
func (s *DefaultCatalogService) AvailableSlots(ctx context.Context, date string) ([]models.Slot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperr.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	// Compare on the local calendar day.
	available := []models.Slot{}
	if date < time.Now().Format(dateLayout) {
		return available, nil
	}

	cacheKey := "slots:avail:" + date
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			if err := json.Unmarshal([]byte(raw), &available); err == nil {
				return available, nil
			}
		}
	}

	slots, err := s.Slots.GetByDate(date)
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	for _, slot := range slots {
		if slot.Bookable() {
			available = append(available, slot)
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(available); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, utils.AvailabilityCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
			}
		}
	}
	return available, nil
}

// invalidateAvailability drops the cached listing for a date after any slot
// mutation.
func (s *DefaultCatalogService) invalidateAvailability(date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, "slots:avail:"+date).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
