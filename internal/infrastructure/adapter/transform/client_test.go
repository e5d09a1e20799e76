package transform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	mcore "github.com/pictrify/credit-ledger/mocks/port/core"
)

func testLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestTransform(t *testing.T) {
	ctx := context.Background()

	req := provider.TransformRequest{
		Image:       []byte("fake-image-bytes"),
		ContentType: "image/png",
		Style:       "ghibli",
	}

	t.Run("Successful transformation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transform", r.URL.Path)
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseMultipartForm(10<<20))
			assert.Equal(t, "ghibli", r.FormValue("style"))

			file, fileHeader, err := r.FormFile("image")
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			assert.Equal(t, "image/png", fileHeader.Header.Get("Content-Type"))
			data, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("fake-image-bytes"), data)

			_, _ = w.Write([]byte(`{"image_url":"https://cdn.example.com/out.png"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-api-key"}, testLogger(t))

		result, err := client.Transform(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/out.png", result.ImageURL)
	})

	t.Run("Missing content type falls back to octet-stream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(10<<20))
			_, fileHeader, err := r.FormFile("image")
			require.NoError(t, err)
			assert.Equal(t, "application/octet-stream", fileHeader.Header.Get("Content-Type"))

			_, _ = w.Write([]byte(`{"image_url":"https://cdn.example.com/out.png"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-api-key"}, testLogger(t))

		untyped := req
		untyped.ContentType = ""
		_, err := client.Transform(ctx, untyped)

		require.NoError(t, err)
	})

	t.Run("Non-200 response is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-api-key"}, testLogger(t))

		result, err := client.Transform(ctx, req)

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, result)
	})

	t.Run("Slow provider times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(Config{
			BaseURL:        server.URL,
			APIKey:         "test-api-key",
			RequestTimeout: 50 * time.Millisecond,
		}, testLogger(t))

		result, err := client.Transform(ctx, req)

		assert.ErrorIs(t, err, errs.ErrProviderTimeout)
		assert.Nil(t, result)
	})

	t.Run("Response without an image url rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "test-api-key"}, testLogger(t))

		result, err := client.Transform(ctx, req)

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, result)
	})

	t.Run("Empty image or style rejected without a request", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://unreachable.invalid"}, testLogger(t))

		noImage := req
		noImage.Image = nil
		_, err := client.Transform(ctx, noImage)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		noStyle := req
		noStyle.Style = ""
		_, err = client.Transform(ctx, noStyle)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
