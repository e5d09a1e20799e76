package handler

import (
	"io"
	"net/http"

	domainerr "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploads before they reach the transformation provider
const maxImageBytes = 10 << 20

// ConsumptionHandler handles paid transformation HTTP requests
type ConsumptionHandler struct {
	consumptionUseCase usecase.ConsumptionUseCase
	logger             coreport.Logger
}

// NewConsumptionHandler creates a new consumption handler instance
func NewConsumptionHandler(consumptionUseCase usecase.ConsumptionUseCase, logger coreport.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{
		consumptionUseCase: consumptionUseCase,
		logger:             logger,
	}
}

// Transform handles POST /api/v1/transform. The request is a multipart form
// with an image file and a style field.
func (h *ConsumptionHandler) Transform(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	style := c.PostForm("style")
	if style == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required field: style",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required file: image",
		})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Image exceeds the upload size limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, domainerr.ErrInternalServer)
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	outcome, err := h.consumptionUseCase.Transform(c.Request.Context(), usecase.TransformCommand{
		UserID:      userID,
		Image:       image,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Style:       style,
	})
	if err != nil {
		h.logger.Error("Error processing transformation", map[string]any{
			"user_id": userID,
			"style":   style,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransformResponse{
		ImageURL:         outcome.ImageURL,
		RemainingCredits: outcome.RemainingCredits,
	})
}
