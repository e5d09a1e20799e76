package handler

import (
	"net/http"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	domainerr "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DiscountHandler handles discount-related HTTP requests
type DiscountHandler struct {
	discountUseCase usecase.DiscountUseCase
	logger          coreport.Logger
}

// NewDiscountHandler creates a new discount handler instance
func NewDiscountHandler(discountUseCase usecase.DiscountUseCase, logger coreport.Logger) *DiscountHandler {
	return &DiscountHandler{
		discountUseCase: discountUseCase,
		logger:          logger,
	}
}

// Validate handles POST /api/v1/discounts/validate
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req dto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	info, err := h.discountUseCase.Validate(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiscountInfoResponse{
		Code:            info.Code,
		DiscountPercent: info.DiscountPercent,
		RemainingUses:   info.RemainingUses,
		Unlimited:       info.Unlimited,
	})
}

// Usage handles GET /api/v1/discounts/:code/usage
func (h *DiscountHandler) Usage(c *gin.Context) {
	code := c.Param("code")

	report, err := h.discountUseCase.Usage(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UsageResponse{
		Code:            report.Code,
		CurrentUsage:    report.CurrentUsage,
		MaxUses:         report.MaxUses,
		Remaining:       report.Remaining,
		IsValid:         report.IsValid,
		DiscountPercent: report.DiscountPercent,
	})
}

// Create handles POST /api/v1/admin/discounts
func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	code, err := h.discountUseCase.CreateCode(c.Request.Context(), req.Code, req.DiscountPercent, req.MaxUses, req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDiscountResponse(code))
}

// Delete handles DELETE /api/v1/admin/discounts/:code
func (h *DiscountHandler) Delete(c *gin.Context) {
	if err := h.discountUseCase.DeleteCode(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/v1/admin/discounts
func (h *DiscountHandler) List(c *gin.Context) {
	codes, err := h.discountUseCase.ListCodes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.DiscountResponse, 0, len(codes))
	for _, code := range codes {
		responses = append(responses, toDiscountResponse(code))
	}
	c.JSON(http.StatusOK, responses)
}

func toDiscountResponse(code *entity.DiscountCode) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:              code.ID,
		Code:            code.Code,
		DiscountPercent: code.DiscountPercent,
		MaxUses:         code.MaxUses,
		Used:            code.Used,
		ExpiresAt:       code.ExpiresAt,
		CreatedAt:       code.CreatedAt,
	}
}
