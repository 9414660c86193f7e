package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/internal/ports"
	"github.com/bft-labs/urlfreezer/pkg/log"
)

// maxErrorBody caps how much of a non-2xx response body is kept in the error.
const maxErrorBody = 4 << 10

// Transport posts JSON envelopes to the resolution service.
// It is safe for concurrent use when the underlying HTTPClient is.
type Transport struct {
	client    ports.HTTPClient
	logger    log.Logger
	userAgent string
}

// NewTransport creates a new JSON transport.
func NewTransport(client ports.HTTPClient, logger log.Logger, userAgent string) *Transport {
	return &Transport{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

// PostJSON marshals payload, POSTs it to endpoint and returns the raw response body.
// Every failure, including a non-2xx status, wraps domain.ErrTransport.
func (t *Transport) PostJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.Wrap(domain.ErrTransport, "marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.Wrap(domain.ErrTransport, "create request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.ErrTransport, "send request", err)
	}
	defer resp.Body.Close()

	t.logger.Debug("service responded",
		log.String("endpoint", endpoint),
		log.String("request_id", requestID),
		log.Int("status", resp.StatusCode),
		log.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, domain.Wrap(domain.ErrTransport, fmt.Sprintf("request %s", requestID), &domain.StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(respBody)),
		})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Wrap(domain.ErrTransport, "read response", err)
	}
	return raw, nil
}
