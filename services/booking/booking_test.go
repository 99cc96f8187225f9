package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"venuely/apperr"
	"venuely/models"
	"venuely/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func newTestService(store *memStore) (*booking.DefaultBookingService, *fakePlanRepo, *fakeAddonRepo) {
	plans := &fakePlanRepo{plans: map[string]*models.Plan{
		"plan-gold": {ID: "plan-gold", Name: "Gold", Price: 4999, IsActive: true},
		"plan-old":  {ID: "plan-old", Name: "Legacy", Price: 1999, IsActive: false},
	}}
	addons := &fakeAddonRepo{addons: map[string]*models.Addon{
		"addon-dj":   {ID: "addon-dj", Name: "DJ", Price: 500, IsAvailable: true},
		"addon-arch": {ID: "addon-arch", Name: "Balloon Arch", Price: 300, IsAvailable: true, MaxQuantity: 2},
		"addon-gone": {ID: "addon-gone", Name: "Fog Machine", Price: 150, IsAvailable: false},
	}}
	svc := &booking.DefaultBookingService{
		Repo:      store,
		SlotRepo:  &fakeSlotRepo{store: store},
		PlanRepo:  plans,
		AddonRepo: addons,
	}
	return svc, plans, addons
}

func validRequest(date string) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		CustomerName:  "Maya Kimathi",
		CustomerEmail: "maya@example.com",
		CustomerPhone: "+254700111222",
		EventDate:     date,
		SlotID:        "slot-evening",
		PlanID:        "plan-gold",
	}
}

func seedSlot(store *memStore, date string, capacity int) {
	store.addSlot(models.Slot{
		ID:          "slot-evening",
		Name:        "Evening",
		Date:        date,
		StartTime:   "17:00",
		EndTime:     "22:00",
		IsAvailable: true,
		MaxCapacity: capacity,
	})
}

func TestCreateBookingSnapshotsPrices(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{
		map[string]interface{}{"addonId": "addon-dj", "quantity": float64(1), "price": float64(1)},
		map[string]interface{}{"addonId": "addon-arch", "quantity": float64(2)},
	}

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Gold", b.PlanName)
	assert.Equal(t, 4999.0, b.PlanPrice)
	require.Len(t, b.Addons, 2)
	// Catalog price wins over the client-sent one.
	assert.Equal(t, 500.0, b.Addons[0].Price)
	assert.Equal(t, 4999.0+500+2*300, b.TotalAmount)

	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)
	assert.Regexp(t, `^VNB-\d{14}-[0-9A-F]{10}$`, b.BookingRef)

	assert.Equal(t, 1, store.slotByID("slot-evening").CurrentBookings)
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	store := newMemStore()
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	_, err := svc.Create(context.Background(), validRequest(date))
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingRejectsBadDateFormat(t *testing.T) {
	store := newMemStore()
	svc, _, _ := newTestService(store)

	req := validRequest("31/12/2026")
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingUnknownPlan(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.PlanID = "plan-nope"
	_, err := svc.Create(context.Background(), req)
	var nfErr apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestCreateBookingInactivePlan(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.PlanID = "plan-old"
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingSlotDateMismatch(t *testing.T) {
	store := newMemStore()
	seedSlot(store, futureDate(7), 3)
	svc, _, _ := newTestService(store)

	req := validRequest(futureDate(8))
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingAddonOverQuantity(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{
		map[string]interface{}{"addonId": "addon-arch", "quantity": float64(3)},
	}
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

// The same addon referenced twice, once by ID and once by name, collapses
// into a single line with the quantities summed.
func TestCreateBookingMergesDuplicateAddonEntries(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{
		map[string]interface{}{"addonId": "addon-arch", "quantity": float64(1)},
		map[string]interface{}{"name": "Balloon Arch", "quantity": float64(1)},
	}

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, b.Addons, 1)
	assert.Equal(t, "addon-arch", b.Addons[0].AddonID)
	assert.Equal(t, 2, b.Addons[0].Quantity)
	assert.Equal(t, 4999.0+2*300, b.TotalAmount)
}

// Splitting an addon across entries must not sidestep its per-booking cap.
func TestCreateBookingAddonCapAppliesAcrossEntries(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{
		map[string]interface{}{"name": "Balloon Arch", "quantity": float64(2)},
		map[string]interface{}{"name": "Balloon Arch", "quantity": float64(2)},
	}
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingUnknownAddonByID(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{
		map[string]interface{}{"addonId": "addon-nope", "quantity": float64(1)},
	}
	_, err := svc.Create(context.Background(), req)
	var nfErr apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "addon-nope", nfErr.Ref)
}

func TestCreateBookingAcceptsToday(t *testing.T) {
	store := newMemStore()
	date := time.Now().Format("2006-01-02")
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	_, err := svc.Create(context.Background(), validRequest(date))
	require.NoError(t, err)
}

func TestCreateBookingUnavailableAddon(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)

	req := validRequest(date)
	req.Addons = []interface{}{"Fog Machine"}
	_, err := svc.Create(context.Background(), req)
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateBookingFullSlotLeavesCounterUntouched(t *testing.T) {
	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, 1)
	svc, _, _ := newTestService(store)

	_, err := svc.Create(context.Background(), validRequest(date))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest(date))
	var cErr apperr.ConflictError
	require.ErrorAs(t, err, &cErr)

	assert.Equal(t, 1, store.slotByID("slot-evening").CurrentBookings)
}

// Concurrent submissions against a slot with capacity C must yield exactly C
// bookings no matter how many race.
func TestCreateBookingConcurrentNeverOversells(t *testing.T) {
	const capacity = 5
	const attempts = 40

	store := newMemStore()
	date := futureDate(7)
	seedSlot(store, date, capacity)
	svc, _, _ := newTestService(store)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), validRequest(date))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		default:
			var cErr apperr.ConflictError
			require.True(t, errors.As(err, &cErr), "unexpected error: %v", err)
			conflicts++
		}
	}

	assert.Equal(t, capacity, ok)
	assert.Equal(t, attempts-capacity, conflicts)
	assert.Equal(t, capacity, store.slotByID("slot-evening").CurrentBookings)
}
