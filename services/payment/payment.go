// Package payment creates Stripe PaymentIntents for booking balances.
package payment

import (
	"fmt"
	"math"

	"venuely/apperr"
	"venuely/config"
	"venuely/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Service creates payment intents for a booking's outstanding amount.
type Service interface {
	CreateIntent(b *models.Booking) (*stripe.PaymentIntent, error)
}

// DefaultPaymentService is the production implementation. stripe.Key is set
// once at process start.
type DefaultPaymentService struct{}

// CreateIntent returns a PaymentIntent covering what remains unpaid on the
// booking. The booking reference travels in the intent metadata so Stripe
// dashboard entries can be traced back.
func (s *DefaultPaymentService) CreateIntent(b *models.Booking) (*stripe.PaymentIntent, error) {
	if b.Status == models.BookingStatusCancelled {
		return nil, apperr.ConflictError{Message: "cannot collect payment for a cancelled booking"}
	}
	outstanding := b.Outstanding()
	if outstanding <= 0 {
		return nil, apperr.ConflictError{Message: "booking has no outstanding amount"}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(outstanding * 100))),
		Currency: stripe.String(config.AppConfig.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_ref", b.BookingRef)
	params.AddMetadata("customer_email", b.CustomerEmail)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent for %s: %w", b.BookingRef, err)
	}
	return intent, nil
}
