package usecase

import (
	"context"
	"time"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
)

// AccountUseCase exposes account lifecycle and balance queries
type AccountUseCase interface {
	// CreateAccount provisions a ledger account for an externally-authenticated
	// user, seeding it with the configured signup grant
	CreateAccount(ctx context.Context, userID string, isAdmin bool) (*entity.Account, error)
	// GetAccount retrieves an account by user ID
	GetAccount(ctx context.Context, userID string) (*entity.Account, error)
	// GetBalance returns the current credit balance for a user
	GetBalance(ctx context.Context, userID string) (int64, error)
	// AccountExists reports whether an account exists for the user
	AccountExists(ctx context.Context, userID string) (bool, error)
	// ListAccounts returns all accounts (admin surface)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	// ListTransactions returns the full transaction log (admin surface)
	ListTransactions(ctx context.Context) ([]*entity.TransactionRecord, error)
}

// UsageReport describes a discount code's consumption state
type UsageReport struct {
	Code            string
	CurrentUsage    int64
	MaxUses         *int64 // nil means unlimited
	Remaining       int64  // Meaningless when MaxUses is nil
	IsValid         bool
	DiscountPercent int64
}

// DiscountUseCase exposes discount validation and administration
type DiscountUseCase interface {
	// Validate checks a raw code against existence, expiry and the usage cap
	Validate(ctx context.Context, rawCode string) (*entity.DiscountInfo, error)
	// Usage reports the current consumption state of a code
	Usage(ctx context.Context, rawCode string) (*UsageReport, error)
	// CreateCode registers a new discount code (admin surface)
	CreateCode(ctx context.Context, rawCode string, percent int64, maxUses *int64, expiresAt *time.Time) (*entity.DiscountCode, error)
	// DeleteCode removes a discount code (admin surface)
	DeleteCode(ctx context.Context, rawCode string) error
	// ListCodes returns all discount codes (admin surface)
	ListCodes(ctx context.Context) ([]*entity.DiscountCode, error)
	// IncrementUsage bumps a code's usage counter through the registry's
	// cap-guarded atomic update and returns the new count
	IncrementUsage(ctx context.Context, rawCode string) (int64, error)
}

// CatalogUseCase exposes the plan catalog
type CatalogUseCase interface {
	// ListPlans returns all plans ordered by price
	ListPlans(ctx context.Context) ([]*entity.Plan, error)
	// GetPlan retrieves a plan by ID
	GetPlan(ctx context.Context, id uint64) (*entity.Plan, error)
	// CreatePlan registers a new plan (admin surface)
	CreatePlan(ctx context.Context, plan *entity.Plan) (*entity.Plan, error)
	// UpdatePlan replaces a plan's mutable fields (admin surface)
	UpdatePlan(ctx context.Context, plan *entity.Plan) error
	// DeletePlan removes a plan (admin surface)
	DeletePlan(ctx context.Context, id uint64) error
}

// OrderCommand requests order creation for a plan purchase
type OrderCommand struct {
	UserID       string
	PlanID       uint64
	DiscountCode string // Optional
}

// RedeemCommand completes a plan purchase after client-side checkout
type RedeemCommand struct {
	UserID       string
	PlanID       uint64
	DiscountCode string // Optional, re-validated server-side
	OrderID      string
	PaymentID    string
	Signature    string
}

// WaitlistRedeemCommand completes the fixed-price waitlist purchase
type WaitlistRedeemCommand struct {
	UserID    string
	OrderID   string
	PaymentID string
	Signature string
}

// RedeemResult is the outcome of a successful redemption
type RedeemResult struct {
	NewBalance    int64
	AmountCharged int64 // Minor currency units
}

// RedemptionUseCase orchestrates the purchase protocol
type RedemptionUseCase interface {
	// CreateOrder resolves the plan, computes the discounted amount
	// server-side and registers an order at the payment provider
	CreateOrder(ctx context.Context, cmd OrderCommand) (*provider.Order, error)
	// Redeem verifies the payment, applies the credit grant atomically and
	// records best-effort audit entries
	Redeem(ctx context.Context, cmd RedeemCommand) (*RedeemResult, error)
	// CreateWaitlistOrder registers a fixed-amount waitlist order
	CreateWaitlistOrder(ctx context.Context, userID string) (*provider.Order, error)
	// RedeemWaitlist grants the one-time waitlist bonus, idempotently
	RedeemWaitlist(ctx context.Context, cmd WaitlistRedeemCommand) (*RedeemResult, error)
}

// TransformCommand requests a paid image transformation
type TransformCommand struct {
	UserID      string
	Image       []byte
	ContentType string
	Style       string
}

// TransformOutcome is the result of a successful paid transformation
type TransformOutcome struct {
	ImageURL         string
	RemainingCredits int64
}

// ConsumptionUseCase orchestrates the debit protocol around the
// image-generation provider
type ConsumptionUseCase interface {
	// Transform holds the configured cost, invokes the provider and releases
	// the hold if the provider fails
	Transform(ctx context.Context, cmd TransformCommand) (*TransformOutcome, error)
}
