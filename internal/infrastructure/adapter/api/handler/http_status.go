package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFromError maps domain errors to HTTP status codes. The payment flow
// distinguishes rejections the client can act on (422, 402) from provider
// failures (502, 504).
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrPlanNotFound),
		errors.Is(err, domainerr.ErrDiscountNotFound),
		errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDiscountExpired),
		errors.Is(err, domainerr.ErrMaxUsesReached):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrAlreadyGranted),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrDuplicateDiscount):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrInvalidSignature),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidDiscount):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrProviderTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domainerr.ErrProviderError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error payload for a domain error
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
