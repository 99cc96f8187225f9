package catalog

import (
	"context"

	addonRepo "venuely/database/repository/addon"
	bookingRepo "venuely/database/repository/booking"
	planRepo "venuely/database/repository/plan"
	slotRepo "venuely/database/repository/slot"
	"venuely/models"

	"github.com/go-redis/redis/v8"
)

// Service manages the bookable catalog: plans, add-ons and slots.
type Service interface {
	CreatePlan(req *models.UpsertPlanRequest) (*models.Plan, error)
	UpdatePlan(id string, req *models.UpsertPlanRequest) (*models.Plan, error)
	DeletePlan(id string) error
	GetPlan(id string) (*models.Plan, error)
	ListPlans(activeOnly bool) ([]models.Plan, error)

	CreateAddon(req *models.UpsertAddonRequest) (*models.Addon, error)
	UpdateAddon(id string, req *models.UpsertAddonRequest) (*models.Addon, error)
	DeleteAddon(id string) error
	GetAddon(id string) (*models.Addon, error)
	ListAddons(availableOnly bool) ([]models.Addon, error)

	CreateSlot(req *models.UpsertSlotRequest) (*models.Slot, error)
	UpdateSlot(id string, req *models.UpsertSlotRequest) (*models.Slot, error)
	DeleteSlot(id string) error
	GetSlot(id string) (*models.Slot, error)
	ListSlots() ([]models.Slot, error)
	AvailableSlots(ctx context.Context, date string) ([]models.Slot, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Plans  planRepo.PlanRepository
	Addons addonRepo.AddonRepository
	Slots  slotRepo.SlotRepository

	// Bookings guards slot deletion and capacity shrinking against active
	// bookings.
	Bookings bookingRepo.BookingRepository

	// Cache is optional; availability listings are cached per date.
	Cache *redis.Client
}
