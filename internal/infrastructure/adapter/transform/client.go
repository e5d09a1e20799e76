package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
)

// Config holds the image transformation provider settings
type Config struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

// Client calls the external style-transfer service
type Client struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a new transformation provider client
func NewClient(config Config, logger coreport.Logger) *Client {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 60 * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
		logger: logger,
	}
}

type transformResponse struct {
	ImageURL string `json:"image_url"`
	Error    string `json:"error,omitempty"`
}

// Transform uploads the source image and style selection and returns the URL
// of the generated result
func (c *Client) Transform(ctx context.Context, req provider.TransformRequest) (*provider.TransformResult, error) {
	if len(req.Image) == 0 || req.Style == "" {
		return nil, errs.ErrInvalidRequest
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="source"`)
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	if err := writer.WriteField("style", req.Style); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}

	url := c.config.BaseURL + "/v1/transform"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error("Transformation provider timed out", map[string]any{
				"style": req.Style,
			})
			return nil, errs.ErrProviderTimeout
		}
		c.logger.Error("Transformation provider request failed", map[string]any{
			"style": req.Style,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderError, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Transformation provider rejected request", map[string]any{
			"style":  req.Style,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: provider returned status %d", errs.ErrProviderError, resp.StatusCode)
	}

	var parsed transformResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %s", errs.ErrProviderError, err.Error())
	}
	if parsed.ImageURL == "" {
		return nil, fmt.Errorf("%w: provider response missing image url", errs.ErrProviderError)
	}

	c.logger.Info("Transformation completed", map[string]any{
		"style": req.Style,
	})

	return &provider.TransformResult{ImageURL: parsed.ImageURL}, nil
}
