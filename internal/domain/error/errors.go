package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidSignature    = 4004
	CodeDiscountExpired     = 4005
	CodeMaxUsesReached      = 4006
	CodeAlreadyGranted      = 4007
	CodeInvalidDiscount     = 4008
	CodeUserNotFound        = 4040
	CodePlanNotFound        = 4041
	CodeDiscountNotFound    = 4042

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeCreditUpdateFailed = 5001
	CodeProviderError      = 5020
	CodeProviderTimeout    = 5040
)

// Base error types
var (
	// ErrInsufficientCredits is returned when an account cannot cover a debit
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a monetary amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidDiscount is returned when a discount code record is malformed
	ErrInvalidDiscount = errors.New("invalid discount code")

	// ErrDiscountNotFound is returned when no discount matches the given code
	ErrDiscountNotFound = errors.New("discount code not found")

	// ErrDiscountExpired is returned when a discount code is past its expiry
	ErrDiscountExpired = errors.New("discount code has expired")

	// ErrMaxUsesReached is returned when a discount code is at its usage cap
	ErrMaxUsesReached = errors.New("discount code has reached its maximum uses")

	// ErrAlreadyGranted is returned when a one-time grant was already applied
	ErrAlreadyGranted = errors.New("bonus already granted")

	// ErrInvalidSignature is returned when a payment signature does not verify
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrUserNotFound is returned when the requested account doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrPlanNotFound is returned when the requested plan doesn't exist
	ErrPlanNotFound = errors.New("plan not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCreditUpdateFailed is returned when the credit grant could not be applied
	ErrCreditUpdateFailed = errors.New("failed to update credits")

	// ErrAuditWriteFailed marks a non-fatal failure of an audit write
	ErrAuditWriteFailed = errors.New("audit write failed")

	// ErrProviderTimeout is returned when the external provider call timed out
	ErrProviderTimeout = errors.New("provider call timed out")

	// ErrProviderError is returned when the external provider call failed
	ErrProviderError = errors.New("provider call failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create an account that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateDiscount is returned when creating a discount code that already exists
	ErrDuplicateDiscount = errors.New("discount code already exists")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrDiscountExpired):
		return CodeDiscountExpired
	case errors.Is(err, ErrMaxUsesReached):
		return CodeMaxUsesReached
	case errors.Is(err, ErrAlreadyGranted):
		return CodeAlreadyGranted
	case errors.Is(err, ErrInvalidDiscount):
		return CodeInvalidDiscount
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPlanNotFound):
		return CodePlanNotFound
	case errors.Is(err, ErrDiscountNotFound):
		return CodeDiscountNotFound
	case errors.Is(err, ErrCreditUpdateFailed):
		return CodeCreditUpdateFailed
	case errors.Is(err, ErrProviderTimeout):
		return CodeProviderTimeout
	case errors.Is(err, ErrProviderError):
		return CodeProviderError
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for insufficient credits
type InsufficientCreditsError struct {
	UserID      string
	Cost        int64
	CurrCredits int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Cost, e.CurrCredits)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_credits",
		"user_id":         e.UserID,
		"cost":            e.Cost,
		"current_credits": e.CurrCredits,
		"error_code":      CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, cost, currentCredits int64) error {
	return &InsufficientCreditsError{
		UserID:      userID,
		Cost:        cost,
		CurrCredits: currentCredits,
	}
}

// RedemptionError represents an error raised while processing a redemption
type RedemptionError struct {
	UserID     string
	PlanID     uint64
	Code       string
	PaymentRef string
	Reason     string
	Err        error
}

// Error implements the error interface for RedemptionError
func (e *RedemptionError) Error() string {
	return fmt.Sprintf("redemption error for user %s (plan: %d, payment: %s): %s - %v",
		e.UserID, e.PlanID, e.PaymentRef, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RedemptionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RedemptionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "redemption_error",
		"user_id":     e.UserID,
		"plan_id":     e.PlanID,
		"code":        e.Code,
		"payment_ref": e.PaymentRef,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewRedemptionError creates a detailed redemption error
func NewRedemptionError(userID string, planID uint64, code, paymentRef, reason string, err error) error {
	return &RedemptionError{
		UserID:     userID,
		PlanID:     planID,
		Code:       code,
		PaymentRef: paymentRef,
		Reason:     reason,
		Err:        err,
	}
}

// DiscountError represents an error raised while validating or consuming a discount code
type DiscountError struct {
	Code string
	Err  error
}

// Error implements the error interface for DiscountError
func (e *DiscountError) Error() string {
	return fmt.Sprintf("discount error for code %s: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error
func (e *DiscountError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DiscountError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "discount_error",
		"code":       e.Code,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDiscountError creates a detailed discount error
func NewDiscountError(code string, err error) error {
	return &DiscountError{Code: code, Err: err}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrDiscountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDiscountRejection checks if the error is one of the discount validation failures
func IsDiscountRejection(err error) bool {
	return errors.Is(err, ErrDiscountNotFound) ||
		errors.Is(err, ErrDiscountExpired) ||
		errors.Is(err, ErrMaxUsesReached)
}

// IsProviderError checks if the error came from the external transformation provider
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderError) || errors.Is(err, ErrProviderTimeout)
}
