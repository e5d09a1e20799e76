package catalog

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/persistence"
)

// UseCase implements the plan catalog operations. Plans are reference data:
// the ledger only reads them, administrators mutate them.
type UseCase struct {
	planRepo persistence.PlanRepository
	logger   coreport.Logger
}

// NewUseCase creates a new catalog use case
func NewUseCase(planRepo persistence.PlanRepository, logger coreport.Logger) *UseCase {
	return &UseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// ListPlans returns all plans ordered by price
func (uc *UseCase) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	return uc.planRepo.List(ctx)
}

// GetPlan retrieves a plan by ID
func (uc *UseCase) GetPlan(ctx context.Context, id uint64) (*entity.Plan, error) {
	return uc.planRepo.GetByID(ctx, id)
}

// CreatePlan registers a new plan (admin surface)
func (uc *UseCase) CreatePlan(ctx context.Context, plan *entity.Plan) (*entity.Plan, error) {
	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Error("Failed to create plan", map[string]any{
			"name":  plan.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("Plan created", map[string]any{
		"plan_id": plan.ID,
		"name":    plan.Name,
		"price":   entity.MinorUnitsToString(plan.Price),
	})
	return plan, nil
}

// UpdatePlan replaces a plan's mutable fields (admin surface)
func (uc *UseCase) UpdatePlan(ctx context.Context, plan *entity.Plan) error {
	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return err
	}

	uc.logger.Info("Plan updated", map[string]any{
		"plan_id": plan.ID,
		"name":    plan.Name,
	})
	return nil
}

// DeletePlan removes a plan (admin surface)
func (uc *UseCase) DeletePlan(ctx context.Context, id uint64) error {
	if err := uc.planRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Plan deleted", map[string]any{
		"plan_id": id,
	})
	return nil
}
