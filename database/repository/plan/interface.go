package planRepo

import "venuely/models"

// PlanRepository defines data access for priced packages.
type PlanRepository interface {
	Create(plan *models.Plan) error
	Update(plan *models.Plan) error
	Delete(id string) error
	GetByID(id string) (*models.Plan, error)
	GetAll(activeOnly bool) ([]models.Plan, error)
}
