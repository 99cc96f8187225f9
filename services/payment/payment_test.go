package payment_test

import (
	"testing"

	"venuely/apperr"
	"venuely/models"
	"venuely/services/payment"

	"github.com/stretchr/testify/require"
)

func TestCreateIntentRejectsCancelledBooking(t *testing.T) {
	svc := &payment.DefaultPaymentService{}
	b := &models.Booking{
		BookingRef:  "VNB-20270301090000-ABCDEF1234",
		Status:      models.BookingStatusCancelled,
		TotalAmount: 5000,
	}

	_, err := svc.CreateIntent(b)
	var cErr apperr.ConflictError
	require.ErrorAs(t, err, &cErr)
}

func TestCreateIntentRejectsSettledBooking(t *testing.T) {
	svc := &payment.DefaultPaymentService{}
	b := &models.Booking{
		BookingRef:  "VNB-20270301090000-ABCDEF1234",
		Status:      models.BookingStatusConfirmed,
		TotalAmount: 5000,
		AdvancePaid: 5000,
	}

	_, err := svc.CreateIntent(b)
	var cErr apperr.ConflictError
	require.ErrorAs(t, err, &cErr)
}
