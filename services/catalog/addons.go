package catalog

import (
	"errors"

	"venuely/apperr"
	addonRepo "venuely/database/repository/addon"
	"venuely/models"

	"github.com/google/uuid"
)

// CreateAddon adds a new optional extra. New addons default to available.
func (s *DefaultCatalogService) CreateAddon(req *models.UpsertAddonRequest) (*models.Addon, error) {
	if req.Price < 0 {
		return nil, apperr.ValidationError{Message: "addon price cannot be negative"}
	}

	addon := &models.Addon{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		IsAvailable:  true,
		MaxQuantity:  req.MaxQuantity,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsAvailable != nil {
		addon.IsAvailable = *req.IsAvailable
	}

	if err := s.Addons.Create(addon); err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return addon, nil
}

// UpdateAddon modifies an existing addon. Booking snapshots are unaffected.
func (s *DefaultCatalogService) UpdateAddon(id string, req *models.UpsertAddonRequest) (*models.Addon, error) {
	if req.Price < 0 {
		return nil, apperr.ValidationError{Message: "addon price cannot be negative"}
	}

	addon, err := s.GetAddon(id)
	if err != nil {
		return nil, err
	}

	addon.Name = req.Name
	addon.Description = req.Description
	addon.Price = req.Price
	addon.Category = req.Category
	addon.MaxQuantity = req.MaxQuantity
	addon.DisplayOrder = req.DisplayOrder
	if req.IsAvailable != nil {
		addon.IsAvailable = *req.IsAvailable
	}

	if err := s.Addons.Update(addon); err != nil {
		if errors.Is(err, addonRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "addon", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return addon, nil
}

// DeleteAddon removes an addon from the catalog.
func (s *DefaultCatalogService) DeleteAddon(id string) error {
	if err := s.Addons.Delete(id); err != nil {
		if errors.Is(err, addonRepo.ErrNotFound) {
			return apperr.NotFoundError{Resource: "addon", Ref: id}
		}
		return apperr.PersistenceError{Err: err}
	}
	return nil
}

// GetAddon returns a single addon.
func (s *DefaultCatalogService) GetAddon(id string) (*models.Addon, error) {
	addon, err := s.Addons.GetByID(id)
	if err != nil {
		if errors.Is(err, addonRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "addon", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return addon, nil
}

// ListAddons returns addons ordered by display order.
func (s *DefaultCatalogService) ListAddons(availableOnly bool) ([]models.Addon, error) {
	addons, err := s.Addons.GetAll(availableOnly)
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return addons, nil
}
