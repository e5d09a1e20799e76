package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
)

// Config holds the payment provider settings
type Config struct {
	BaseURL      string
	KeyID        string
	KeySecret    string
	Currency     string
	OrderTimeout time.Duration
}

// Client creates orders against the Razorpay Orders API
type Client struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a new payment provider client
func NewClient(config Config, logger coreport.Logger) *Client {
	if config.OrderTimeout <= 0 {
		config.OrderTimeout = 15 * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.OrderTimeout,
		},
		logger: logger,
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"` // Minor currency units
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder registers an order at the provider for the given amount
func (c *Client) CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*provider.Order, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	payload, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: c.config.Currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}

	url := c.config.BaseURL + "/v1/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error("Payment provider order creation timed out", map[string]any{
				"receipt": receipt,
			})
			return nil, errs.ErrProviderTimeout
		}
		c.logger.Error("Payment provider order creation failed", map[string]any{
			"receipt": receipt,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Payment provider rejected order creation", map[string]any{
			"receipt": receipt,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: provider returned status %d", errs.ErrProviderError, resp.StatusCode)
	}

	var parsed orderResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %s", errs.ErrProviderError, err.Error())
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: provider response missing order id", errs.ErrProviderError)
	}

	c.logger.Info("Payment order created", map[string]any{
		"order_id": parsed.ID,
		"amount":   parsed.Amount,
		"currency": parsed.Currency,
		"receipt":  receipt,
	})

	return &provider.Order{
		OrderID:  parsed.ID,
		Amount:   parsed.Amount,
		Currency: parsed.Currency,
		KeyID:    c.config.KeyID,
	}, nil
}
