package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/pictrify/credit-ledger/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeAccount represents the credit account entity
	EntityTypeAccount EntityType = "account"
	// EntityTypeDiscount represents the discount code entity
	EntityTypeDiscount EntityType = "discount"
	// EntityTypePlan represents the plan entity
	EntityTypePlan EntityType = "plan"
	// EntityTypeTransaction represents the transaction record entity
	EntityTypeTransaction EntityType = "transaction"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "discount") {
			return domainErr.ErrDuplicateDiscount
		}
		return domainErr.ErrDuplicateUser

	// The credits check constraint means the balance would go negative
	case strings.Contains(errMsg, "check constraint"):
		return domainErr.ErrInsufficientCredits

	case strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrInvalidRequest

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeAccount:
			return domainErr.ErrUserNotFound
		case EntityTypeDiscount:
			return domainErr.ErrDiscountNotFound
		case EntityTypePlan:
			return domainErr.ErrPlanNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
