package booking_test

import (
	"context"
	"fmt"
	"sync"

	addonRepo "venuely/database/repository/addon"
	bookingRepo "venuely/database/repository/booking"
	planRepo "venuely/database/repository/plan"
	slotRepo "venuely/database/repository/slot"
	"venuely/models"
)

// memStore is an in-memory stand-in for the Mongo-backed booking and slot
// repositories. A single mutex makes the reserve and release operations
// atomic the way the real transactions are.
type memStore struct {
	mu       sync.Mutex
	slots    map[string]*models.Slot
	bookings map[string]*models.Booking
}

func newMemStore() *memStore {
	return &memStore{
		slots:    make(map[string]*models.Slot),
		bookings: make(map[string]*models.Booking),
	}
}

func (s *memStore) addSlot(slot models.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := slot
	s.slots[slot.ID] = &copied
}

func (s *memStore) slotByID(id string) models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.slots[id]
}

// BookingRepository implementation.

func (s *memStore) CreateWithSlotReservation(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[b.SlotID]
	if !ok || !slot.IsAvailable || slot.CurrentBookings >= slot.MaxCapacity {
		return bookingRepo.ErrSlotUnavailable
	}
	slot.CurrentBookings++

	copied := *b
	s.bookings[b.ID] = &copied
	return nil
}

func (s *memStore) CancelWithSlotRelease(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[b.ID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if !stored.HoldsCapacity() {
		return bookingRepo.ErrStatusChanged
	}
	stored.Status = models.BookingStatusCancelled

	if slot, ok := s.slots[stored.SlotID]; ok && slot.CurrentBookings > 0 {
		slot.CurrentBookings--
	}
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, id, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if stored.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	stored.Status = to
	return nil
}

func (s *memStore) UpdatePayment(_ context.Context, id, paymentStatus string, advancePaid float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	stored.PaymentStatus = paymentStatus
	stored.AdvancePaid = advancePaid
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *memStore) GetByID(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (s *memStore) GetByRef(ref string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.BookingRef == ref {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (s *memStore) GetAll(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.EventDate != "" && b.EventDate != filter.EventDate {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (s *memStore) GetByEventDate(date string) ([]models.Booking, error) {
	return s.GetAll(bookingRepo.ListFilter{EventDate: date})
}

func (s *memStore) CountActiveBySlot(slotID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, b := range s.bookings {
		if b.SlotID == slotID && b.HoldsCapacity() {
			n++
		}
	}
	return n, nil
}

func (s *memStore) Stats(today, weekEnd string) (*models.BookingStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.BookingStats{ByStatus: make(map[string]int64)}
	for _, b := range s.bookings {
		stats.Total++
		stats.ByStatus[b.Status]++
		if b.Status != models.BookingStatusCancelled {
			stats.Revenue += b.TotalAmount
		}
		if b.EventDate == today {
			stats.Today++
		}
		if b.EventDate >= today && b.EventDate <= weekEnd {
			stats.UpcomingWeek++
		}
	}
	return stats, nil
}

var _ bookingRepo.BookingRepository = (*memStore)(nil)

// fakeSlotRepo serves slot reads from the shared store.
type fakeSlotRepo struct {
	store *memStore
}

func (r *fakeSlotRepo) Create(slot *models.Slot) error {
	r.store.addSlot(*slot)
	return nil
}

func (r *fakeSlotRepo) Update(slot *models.Slot) error {
	r.store.addSlot(*slot)
	return nil
}

func (r *fakeSlotRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.slots, id)
	return nil
}

func (r *fakeSlotRepo) GetByID(id string) (*models.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[id]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", id, slotRepo.ErrNotFound)
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) GetAll() ([]models.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.Slot
	for _, slot := range r.store.slots {
		out = append(out, *slot)
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByDate(date string) ([]models.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.Slot
	for _, slot := range r.store.slots {
		if slot.Date == date {
			out = append(out, *slot)
		}
	}
	return out, nil
}

var _ slotRepo.SlotRepository = (*fakeSlotRepo)(nil)

// fakePlanRepo is a map-backed plan catalog.
type fakePlanRepo struct {
	plans map[string]*models.Plan
}

func (r *fakePlanRepo) Create(p *models.Plan) error { r.plans[p.ID] = p; return nil }
func (r *fakePlanRepo) Update(p *models.Plan) error { r.plans[p.ID] = p; return nil }
func (r *fakePlanRepo) Delete(id string) error      { delete(r.plans, id); return nil }

func (r *fakePlanRepo) GetByID(id string) (*models.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, fmt.Errorf("plan %s: %w", id, planRepo.ErrNotFound)
	}
	return p, nil
}

func (r *fakePlanRepo) GetAll(activeOnly bool) ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range r.plans {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

var _ planRepo.PlanRepository = (*fakePlanRepo)(nil)

// fakeAddonRepo is a map-backed addon catalog.
type fakeAddonRepo struct {
	addons map[string]*models.Addon
}

func (r *fakeAddonRepo) Create(a *models.Addon) error { r.addons[a.ID] = a; return nil }
func (r *fakeAddonRepo) Update(a *models.Addon) error { r.addons[a.ID] = a; return nil }
func (r *fakeAddonRepo) Delete(id string) error       { delete(r.addons, id); return nil }

func (r *fakeAddonRepo) GetByID(id string) (*models.Addon, error) {
	a, ok := r.addons[id]
	if !ok {
		return nil, fmt.Errorf("addon %s: %w", id, addonRepo.ErrNotFound)
	}
	return a, nil
}

func (r *fakeAddonRepo) GetByName(name string) (*models.Addon, error) {
	for _, a := range r.addons {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("addon %s: %w", name, addonRepo.ErrNotFound)
}

func (r *fakeAddonRepo) GetAll(availableOnly bool) ([]models.Addon, error) {
	var out []models.Addon
	for _, a := range r.addons {
		if availableOnly && !a.IsAvailable {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

var _ addonRepo.AddonRepository = (*fakeAddonRepo)(nil)
