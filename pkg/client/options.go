package client

import (
	"net/http"

	"github.com/bft-labs/urlfreezer/internal/ports"
	"github.com/bft-labs/urlfreezer/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
	userAgent  string
}

func defaultOptions() options {
	return options{
		httpClient: http.DefaultClient,
		logger:     log.NewNoopLogger(),
		userAgent:  "urlfreezer-go/" + Version,
	}
}

// WithHTTPClient sets the HTTP client used for every round trip.
// Timeouts and connection pooling are configured on it.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}
