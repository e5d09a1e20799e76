package migration

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	usecaseport "github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// seedPlan describes a plan created on first boot
type seedPlan struct {
	name           string
	price          int64 // Minor currency units
	creditsGranted int64
	isPopular      bool
	benefits       []string
}

var defaultPlans = []seedPlan{
	{
		name:           "Starter",
		price:          9900,
		creditsGranted: 30,
		benefits:       []string{"30 style transfers", "Standard resolution"},
	},
	{
		name:           "Creator",
		price:          24900,
		creditsGranted: 100,
		isPopular:      true,
		benefits:       []string{"100 style transfers", "High resolution", "Priority queue"},
	},
	{
		name:           "Studio",
		price:          59900,
		creditsGranted: 300,
		benefits:       []string{"300 style transfers", "High resolution", "Priority queue", "Early access to new styles"},
	},
}

// CreateDefaultPlans seeds the plan catalog when it is empty
func CreateDefaultPlans(ctx context.Context, catalog usecaseport.CatalogUseCase) error {
	existing, err := catalog.ListPlans(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range defaultPlans {
		plan := &entity.Plan{
			Name:           p.name,
			Price:          p.price,
			CreditsGranted: p.creditsGranted,
			IsPopular:      p.isPopular,
			Benefits:       p.benefits,
		}
		if _, err := catalog.CreatePlan(ctx, plan); err != nil {
			return err
		}
	}

	return nil
}
