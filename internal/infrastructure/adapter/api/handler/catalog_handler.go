package handler

import (
	"net/http"
	"strconv"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	domainerr "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles plan catalog HTTP requests
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// List handles GET /api/v1/plans
func (h *CatalogHandler) List(c *gin.Context) {
	plans, err := h.catalogUseCase.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toPlanResponse(plan))
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles GET /api/v1/plans/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parsePlanID(c)
	if !ok {
		return
	}

	plan, err := h.catalogUseCase.GetPlan(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlanResponse(plan))
}

// Create handles POST /api/v1/admin/plans
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	plan := &entity.Plan{
		Name:           req.Name,
		Price:          req.Price,
		CreditsGranted: req.CreditsGranted,
		IsPopular:      req.IsPopular,
		Benefits:       req.Benefits,
	}

	created, err := h.catalogUseCase.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPlanResponse(created))
}

// Update handles PUT /api/v1/admin/plans/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parsePlanID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	plan := &entity.Plan{
		ID:             id,
		Name:           req.Name,
		Price:          req.Price,
		CreditsGranted: req.CreditsGranted,
		IsPopular:      req.IsPopular,
		Benefits:       req.Benefits,
	}

	if err := h.catalogUseCase.UpdatePlan(c.Request.Context(), plan); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlanResponse(plan))
}

// Delete handles DELETE /api/v1/admin/plans/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parsePlanID(c)
	if !ok {
		return
	}

	if err := h.catalogUseCase.DeletePlan(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parsePlanID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid plan ID format",
		})
		return 0, false
	}
	return id, true
}

func toPlanResponse(plan *entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		Price:          plan.Price,
		CreditsGranted: plan.CreditsGranted,
		IsPopular:      plan.IsPopular,
		Benefits:       plan.Benefits,
	}
}
