package entity

import (
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
)

// Plan represents a purchasable credit bundle. Plans are reference data from
// the ledger's perspective; only administrators mutate them.
type Plan struct {
	ID             uint64
	Name           string
	Price          int64 // Price in minor currency units (paise)
	CreditsGranted int64
	IsPopular      bool
	Benefits       []string // Ordered marketing copy, displayed as-is
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPlan creates a plan after validating its fields
func NewPlan(name string, price, creditsGranted int64, isPopular bool, benefits []string, now time.Time) (*Plan, error) {
	if name == "" {
		return nil, errs.ErrInvalidRequest
	}
	if price < 0 || creditsGranted < 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Plan{
		Name:           name,
		Price:          price,
		CreditsGranted: creditsGranted,
		IsPopular:      isPopular,
		Benefits:       benefits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// DiscountedPrice computes the final amount in minor units after applying a
// percentage discount. Integer division truncates, which matches the
// truncate-to-two-decimals behavior of the payment flow.
func (p *Plan) DiscountedPrice(discountPercent int64) int64 {
	if discountPercent <= 0 {
		return p.Price
	}
	if discountPercent >= 100 {
		return 0
	}
	return p.Price * (100 - discountPercent) / 100
}
