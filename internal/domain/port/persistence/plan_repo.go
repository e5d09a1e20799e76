package persistence

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
)

// PlanRepository defines the methods to interact with the plan catalog
type PlanRepository interface {
	// GetByID retrieves a plan by ID
	//
	// Possible errors:
	// - ErrPlanNotFound: if no plan with the specified ID exists
	GetByID(ctx context.Context, id uint64) (*entity.Plan, error)

	// List returns all plans ordered by price
	List(ctx context.Context) ([]*entity.Plan, error)

	// Create creates a new plan (admin surface)
	Create(ctx context.Context, plan *entity.Plan) error

	// Update replaces a plan's mutable fields (admin surface)
	//
	// Possible errors:
	// - ErrPlanNotFound: if no plan with the specified ID exists
	Update(ctx context.Context, plan *entity.Plan) error

	// Delete removes a plan (admin surface)
	//
	// Possible errors:
	// - ErrPlanNotFound: if no plan with the specified ID exists
	Delete(ctx context.Context, id uint64) error
}
