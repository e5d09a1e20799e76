package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PlanRepository implements persistence.PlanRepository using GORM
type PlanRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPlanRepository creates a new PlanRepository instance
func NewPlanRepository(db *gorm.DB, logger coreport.Logger) *PlanRepository {
	return &PlanRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepository) modelToEntity(planModel *model.Plan) *entity.Plan {
	return &entity.Plan{
		ID:             planModel.ID,
		Name:           planModel.Name,
		Price:          planModel.Price,
		CreditsGranted: planModel.CreditsGranted,
		IsPopular:      planModel.IsPopular,
		Benefits:       planModel.Benefits,
		CreatedAt:      planModel.CreatedAt,
		UpdatedAt:      planModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PlanRepository) handleDatabaseError(operation string, err error, planID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"plan_id": planID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPlanNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uint64) (*entity.Plan, error) {
	var planModel model.Plan
	result := r.db.WithContext(ctx).First(&planModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPlanNotFound
		}
		return nil, r.handleDatabaseError("getting plan", result.Error, id)
	}

	return r.modelToEntity(&planModel), nil
}

// List returns all plans ordered by price
func (r *PlanRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []model.Plan
	result := r.db.WithContext(ctx).Order("price asc").Find(&planModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing plans", result.Error, 0)
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for i := range planModels {
		plans = append(plans, r.modelToEntity(&planModels[i]))
	}
	return plans, nil
}

// Create registers a new plan
func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planModel := model.Plan{
		Name:           plan.Name,
		Price:          plan.Price,
		CreditsGranted: plan.CreditsGranted,
		IsPopular:      plan.IsPopular,
		Benefits:       plan.Benefits,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&planModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating plan", result.Error, 0)
	}

	plan.ID = planModel.ID

	r.logger.Info("Plan created", map[string]any{
		"plan_id": plan.ID,
		"name":    plan.Name,
		"price":   plan.Price,
	})
	return nil
}

// Update replaces a plan's mutable fields
func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	result := r.db.WithContext(ctx).Model(&model.Plan{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"name":            plan.Name,
			"price":           plan.Price,
			"credits_granted": plan.CreditsGranted,
			"is_popular":      plan.IsPopular,
			"benefits":        plan.Benefits,
			"updated_at":      plan.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating plan", result.Error, plan.ID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrPlanNotFound
	}

	r.logger.Info("Plan updated", map[string]any{
		"plan_id": plan.ID,
	})
	return nil
}

// Delete removes a plan
func (r *PlanRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Plan{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting plan", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrPlanNotFound
	}

	r.logger.Info("Plan deleted", map[string]any{
		"plan_id": id,
	})
	return nil
}
