package models

import "time"

// Booking statuses. Completed and cancelled are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses, tracked independently of the booking status.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// AddonSelection is a price snapshot of an addon chosen at booking time.
// Later catalog edits never rewrite it.
type AddonSelection struct {
	AddonID  string  `bson:"addon_id,omitempty" json:"addonId,omitempty"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Booking is the aggregate root linking a customer to a Slot, a Plan and
// zero or more Addons, with amount and lifecycle state.
type Booking struct {
	ID              string           `bson:"id" json:"id"`
	BookingRef      string           `bson:"booking_ref" json:"bookingRef"` // e.g., "VNB-20260831142501-7F3A2C", immutable
	CustomerName    string           `bson:"customer_name" json:"customerName"`
	CustomerEmail   string           `bson:"customer_email" json:"customerEmail"`
	CustomerPhone   string           `bson:"customer_phone" json:"customerPhone"`
	EventDate       string           `bson:"event_date" json:"eventDate"` // "YYYY-MM-DD"
	SlotID          string           `bson:"slot_id" json:"slotId"`
	PlanID          string           `bson:"plan_id" json:"planId"`
	PlanName        string           `bson:"plan_name" json:"planName"`   // snapshot
	PlanPrice       float64          `bson:"plan_price" json:"planPrice"` // snapshot
	Addons          []AddonSelection `bson:"addons" json:"addons"`
	TotalAmount     float64          `bson:"total_amount" json:"totalAmount"`
	AdvancePaid     float64          `bson:"advance_paid" json:"advancePaid"`
	Status          string           `bson:"status" json:"status"`
	PaymentStatus   string           `bson:"payment_status" json:"paymentStatus"`
	SpecialRequests string           `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updatedAt"`
}

// HoldsCapacity reports whether the booking currently occupies a unit of its
// slot's capacity.
func (b *Booking) HoldsCapacity() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Outstanding returns the unpaid remainder of the booking amount, never negative.
func (b *Booking) Outstanding() float64 {
	if o := b.TotalAmount - b.AdvancePaid; o > 0 {
		return o
	}
	return 0
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}
