package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nestpaykit/payment-service/internal/adapters/ports"
	"github.com/nestpaykit/payment-service/pkg/httpclient"
	"go.uber.org/zap"
)

// httpTransport posts XML documents to the gateway over a pooled HTTP client
type httpTransport struct {
	client *http.Client
	logger *zap.Logger
}

// New creates the production Transport. A nil client gets the default
// gateway-tuned pool with a 30 second overall timeout.
func New(client *http.Client, logger *zap.Logger) ports.Transport {
	if client == nil {
		client = httpclient.New(httpclient.GatewayConfig(), 30*time.Second)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &httpTransport{client: client, logger: logger}
}

// Post sends body to url as application/xml and returns the raw reply bytes.
// Any network failure or non-2xx status is returned as an error; the caller
// classifies it, this layer never retries.
func (t *httpTransport) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/xml")

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Error("gateway request failed",
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	t.logger.Debug("gateway response received",
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_length", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return raw, nil
}
