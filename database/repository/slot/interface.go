package slotRepo

import "venuely/models"

// SlotRepository defines data access for venue slots. Capacity counters are
// never mutated here; reservation and release happen inside the booking
// repository's transactional operations.
type SlotRepository interface {
	Create(slot *models.Slot) error
	Update(slot *models.Slot) error
	Delete(id string) error
	GetByID(id string) (*models.Slot, error)
	GetAll() ([]models.Slot, error)
	GetByDate(date string) ([]models.Slot, error)
}
