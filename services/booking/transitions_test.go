package booking_test

import (
	"context"
	"testing"

	"venuely/apperr"
	"venuely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBooking(t *testing.T, store *memStore) *models.Booking {
	t.Helper()
	date := futureDate(7)
	seedSlot(store, date, 3)
	svc, _, _ := newTestService(store)
	b, err := svc.Create(context.Background(), validRequest(date))
	require.NoError(t, err)
	return b
}

func TestUpdateStatusHappyPath(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.UpdatePayment(ctx, b.ID, models.PaymentStatusPartial, 1000)
	require.NoError(t, err)

	b2, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b2.Status)

	b3, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, b3.Status)

	// Completion does not release capacity; the event happened.
	assert.Equal(t, 1, store.slotByID("slot-evening").CurrentBookings)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)

	_, err := svc.UpdateStatus(context.Background(), b.ID, "archived")
	var vErr apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	// pending -> completed skips confirmation.
	_, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCompleted)
	var tErr apperr.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)

	stored, err := svc.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestConfirmRequiresPayment(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)

	_, err := svc.UpdateStatus(context.Background(), b.ID, models.BookingStatusConfirmed)
	var cErr apperr.ConflictError
	require.ErrorAs(t, err, &cErr)
}

func TestCancelReleasesCapacityOnce(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	cancelled, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 0, store.slotByID("slot-evening").CurrentBookings)

	// A second cancel finds nothing to release.
	_, err = svc.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled)
	require.Error(t, err)
	assert.Equal(t, 0, store.slotByID("slot-evening").CurrentBookings)
}

func TestCancelledIsTerminal(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, b.ID, models.BookingStatusConfirmed)
	var tErr apperr.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
}

func TestUpdatePaymentValidation(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	var vErr apperr.ValidationError

	_, err := svc.UpdatePayment(ctx, b.ID, "void", 0)
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpdatePayment(ctx, b.ID, models.PaymentStatusPartial, -5)
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpdatePayment(ctx, b.ID, models.PaymentStatusPartial, b.TotalAmount+1)
	require.ErrorAs(t, err, &vErr)
}

func TestUpdatePaymentPaidSettlesFullAmount(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)

	updated, err := svc.UpdatePayment(context.Background(), b.ID, models.PaymentStatusPaid, 0)
	require.NoError(t, err)
	assert.Equal(t, b.TotalAmount, updated.AdvancePaid)
	assert.Equal(t, 0.0, updated.Outstanding())
}

func TestDeleteReleasesHeldCapacity(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, b.ID))
	assert.Equal(t, 0, store.slotByID("slot-evening").CurrentBookings)

	_, err := svc.GetByID(b.ID)
	var nfErr apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteCancelledBookingDoesNotTouchCapacity(t *testing.T) {
	store := newMemStore()
	b := createBooking(t, store)
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, b.ID))

	assert.Equal(t, 0, store.slotByID("slot-evening").CurrentBookings)
}
