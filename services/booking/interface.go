package booking

import (
	"context"

	addonRepo "venuely/database/repository/addon"
	bookingRepo "venuely/database/repository/booking"
	planRepo "venuely/database/repository/plan"
	slotRepo "venuely/database/repository/slot"
	"venuely/models"
	"venuely/services/notification"

	"github.com/go-redis/redis/v8"
)

// Service orchestrates the booking lifecycle: validated creation against
// slot capacity, status and payment transitions, queries and stats.
type Service interface {
	Create(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	List(filter bookingRepo.ListFilter) ([]models.Booking, error)
	Today() ([]models.Booking, error)
	Stats(ctx context.Context) (*models.BookingStats, error)
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error)
	UpdatePayment(ctx context.Context, id, paymentStatus string, advancePaid float64) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	SlotRepo  slotRepo.SlotRepository
	PlanRepo  planRepo.PlanRepository
	AddonRepo addonRepo.AddonRepository

	// Notifier is optional; when set, booking events are pushed
	// best-effort and never block or fail the commit path.
	Notifier notification.Service

	// Cache is optional; when set, stats and availability listings are
	// invalidated on booking writes.
	Cache *redis.Client
}
