package redemption

import (
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/persistence"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// Config carries the fixed parameters of the redemption protocol
type Config struct {
	// WaitlistBonusCredits is the fixed credit grant of the waitlist purchase
	WaitlistBonusCredits int64
	// WaitlistAmount is the fixed waitlist price in minor currency units
	WaitlistAmount int64
}

// Service orchestrates the purchase protocol: payment verification, discount
// re-validation, the atomic credit grant and the best-effort audit writes.
// It is the only component with cross-entity invariants to maintain.
type Service struct {
	accountRepo     persistence.AccountRepository
	planRepo        persistence.PlanRepository
	transactionRepo persistence.TransactionRepository
	discounts       usecase.DiscountUseCase
	orders          provider.OrderCreator
	verifier        provider.PaymentVerifier
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	cfg             Config
}

// NewService creates a new redemption service
func NewService(
	accountRepo persistence.AccountRepository,
	planRepo persistence.PlanRepository,
	transactionRepo persistence.TransactionRepository,
	discounts usecase.DiscountUseCase,
	orders provider.OrderCreator,
	verifier provider.PaymentVerifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	return &Service{
		accountRepo:     accountRepo,
		planRepo:        planRepo,
		transactionRepo: transactionRepo,
		discounts:       discounts,
		orders:          orders,
		verifier:        verifier,
		timeProvider:    timeProvider,
		logger:          logger,
		cfg:             cfg,
	}
}
