package addonRepo

import "venuely/models"

// AddonRepository defines data access for booking add-ons.
type AddonRepository interface {
	Create(addon *models.Addon) error
	Update(addon *models.Addon) error
	Delete(id string) error
	GetByID(id string) (*models.Addon, error)
	GetByName(name string) (*models.Addon, error)
	GetAll(availableOnly bool) ([]models.Addon, error)
}
