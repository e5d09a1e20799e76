package handler

import (
	"net/http"

	domainerr "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RedemptionHandler handles the purchase protocol HTTP requests
type RedemptionHandler struct {
	redemptionUseCase usecase.RedemptionUseCase
	logger            coreport.Logger
}

// NewRedemptionHandler creates a new redemption handler instance
func NewRedemptionHandler(redemptionUseCase usecase.RedemptionUseCase, logger coreport.Logger) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUseCase: redemptionUseCase,
		logger:            logger,
	}
}

// CreateOrder handles POST /api/v1/orders
func (h *RedemptionHandler) CreateOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	order, err := h.redemptionUseCase.CreateOrder(c.Request.Context(), usecase.OrderCommand{
		UserID:       userID,
		PlanID:       req.PlanID,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		h.logger.Error("Error creating order", map[string]any{
			"user_id": userID,
			"plan_id": req.PlanID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	})
}

// Redeem handles POST /api/v1/redeem
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.redemptionUseCase.Redeem(c.Request.Context(), usecase.RedeemCommand{
		UserID:       userID,
		PlanID:       req.PlanID,
		DiscountCode: req.DiscountCode,
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Signature:    req.Signature,
	})
	if err != nil {
		h.logger.Error("Error redeeming payment", map[string]any{
			"user_id":  userID,
			"plan_id":  req.PlanID,
			"order_id": req.OrderID,
			"error":    err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{
		Success:       true,
		NewBalance:    result.NewBalance,
		AmountCharged: result.AmountCharged,
	})
}

// CreateWaitlistOrder handles POST /api/v1/waitlist/orders
func (h *RedemptionHandler) CreateWaitlistOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	order, err := h.redemptionUseCase.CreateWaitlistOrder(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error creating waitlist order", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	})
}

// RedeemWaitlist handles POST /api/v1/waitlist/redeem
func (h *RedemptionHandler) RedeemWaitlist(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.WaitlistRedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.redemptionUseCase.RedeemWaitlist(c.Request.Context(), usecase.WaitlistRedeemCommand{
		UserID:    userID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.logger.Error("Error redeeming waitlist payment", map[string]any{
			"user_id":  userID,
			"order_id": req.OrderID,
			"error":    err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{
		Success:       true,
		NewBalance:    result.NewBalance,
		AmountCharged: result.AmountCharged,
	})
}
