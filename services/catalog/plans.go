package catalog

import (
	"errors"

	"venuely/apperr"
	planRepo "venuely/database/repository/plan"
	"venuely/models"

	"github.com/google/uuid"
)

// CreatePlan adds a new priced package. New plans default to active.
func (s *DefaultCatalogService) CreatePlan(req *models.UpsertPlanRequest) (*models.Plan, error) {
	if req.Price < 0 {
		return nil, apperr.ValidationError{Message: "plan price cannot be negative"}
	}

	plan := &models.Plan{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		Features:      req.Features,
		IsActive:      true,
		DisplayOrder:  req.DisplayOrder,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.Plans.Create(plan); err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return plan, nil
}

// UpdatePlan modifies an existing plan. Existing bookings keep their price
// snapshots, so edits never rewrite booking history.
func (s *DefaultCatalogService) UpdatePlan(id string, req *models.UpsertPlanRequest) (*models.Plan, error) {
	if req.Price < 0 {
		return nil, apperr.ValidationError{Message: "plan price cannot be negative"}
	}

	plan, err := s.GetPlan(id)
	if err != nil {
		return nil, err
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Price = req.Price
	plan.DurationHours = req.DurationHours
	plan.Features = req.Features
	plan.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.Plans.Update(plan); err != nil {
		if errors.Is(err, planRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "plan", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return plan, nil
}

// DeletePlan removes a plan from the catalog.
func (s *DefaultCatalogService) DeletePlan(id string) error {
	if err := s.Plans.Delete(id); err != nil {
		if errors.Is(err, planRepo.ErrNotFound) {
			return apperr.NotFoundError{Resource: "plan", Ref: id}
		}
		return apperr.PersistenceError{Err: err}
	}
	return nil
}

// GetPlan returns a single plan.
func (s *DefaultCatalogService) GetPlan(id string) (*models.Plan, error) {
	plan, err := s.Plans.GetByID(id)
	if err != nil {
		if errors.Is(err, planRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "plan", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return plan, nil
}

// ListPlans returns plans ordered by display order.
func (s *DefaultCatalogService) ListPlans(activeOnly bool) ([]models.Plan, error) {
	plans, err := s.Plans.GetAll(activeOnly)
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}
	return plans, nil
}
