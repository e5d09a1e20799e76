package handler

import (
	"net/http"

	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// CreateAccount handles POST /api/v1/accounts. The account is provisioned
// for the authenticated user with the configured signup grant.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	account, err := h.accountUseCase.CreateAccount(c.Request.Context(), userID, false)
	if err != nil {
		h.logger.Error("Error creating account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AccountResponse{
		UserID:    account.ID,
		Credits:   account.Credits(),
		CreatedAt: account.CreatedAt,
	})
}

// GetAccount handles GET /api/v1/accounts/me
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	account, err := h.accountUseCase.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		UserID:    account.ID,
		Credits:   account.Credits(),
		IsAdmin:   account.IsAdmin,
		CreatedAt: account.CreatedAt,
	})
}

// GetBalance handles GET /api/v1/accounts/me/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	credits, err := h.accountUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Credits: credits,
	})
}

// ListAccounts handles GET /api/v1/admin/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, dto.AccountResponse{
			UserID:    account.ID,
			Credits:   account.Credits(),
			IsAdmin:   account.IsAdmin,
			CreatedAt: account.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// ListTransactions handles GET /api/v1/admin/transactions
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	records, err := h.accountUseCase.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.TransactionResponse{
			ID:             record.ID,
			UserID:         record.UserID,
			Amount:         record.Amount,
			Type:           string(record.Type),
			PaymentRef:     record.PaymentRef,
			CreditsGranted: record.CreditsGranted,
			CreatedAt:      record.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}
