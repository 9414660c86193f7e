package client

import (
	"context"
	"fmt"
	"time"

	transport "github.com/bft-labs/urlfreezer/internal/adapters/http"
	"github.com/bft-labs/urlfreezer/internal/codec"
	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/pkg/log"
)

// DefaultHost is the production urlfreezer service.
const DefaultHost = "https://urlfreezer.com"

// Client resolves links against one service host on behalf of one user.
// Its fields never change after construction, so it is safe for concurrent
// use as long as the configured HTTPClient is.
type Client struct {
	endpoint  string
	user      string
	transport *transport.Transport
	logger    log.Logger
}

// Connect creates a Client for DefaultHost.
func Connect(userID string, opts ...Option) (*Client, error) {
	return ConnectHost(DefaultHost, userID, opts...)
}

// ConnectHost creates a Client for host, which must be an absolute URL.
// The resolution endpoint is computed once here. No network call is made.
func ConnectHost(host, userID string, opts ...Option) (*Client, error) {
	base, err := codec.ParseAbsolute(host)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInvalidHost, fmt.Sprintf("host %q", host), err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		endpoint:  base.JoinPath("api", "fetch_links_v2").String(),
		user:      userID,
		transport: transport.NewTransport(o.httpClient, o.logger, o.userAgent),
		logger:    o.logger,
	}, nil
}

// Endpoint returns the absolute resolution endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// User returns the user identifier sent with every batch.
func (c *Client) User() string { return c.user }

// FetchLinks resolves all links in a single round trip. page is the URL of
// the page containing the links, shared by the whole batch, or nil.
//
// Matches are mapped to links by position. The whole batch fails if any
// entry cannot be decoded or resolved.
func (c *Client) FetchLinks(ctx context.Context, links []domain.LinkToFetch, page *string) ([]domain.LinkInfo, error) {
	start := time.Now()
	batch := codec.Encode(c.user, page, links)

	raw, err := c.transport.PostJSON(ctx, c.endpoint, batch)
	if err != nil {
		return nil, err
	}

	fetched, err := codec.Decode(raw)
	if err != nil {
		return nil, err
	}
	if len(fetched.Links) != len(links) {
		c.logger.Warn("match count differs from request",
			log.Int("requested", len(links)),
			log.Int("matched", len(fetched.Links)),
		)
	}

	infos, err := codec.ResolveAll(fetched, page)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched links",
		log.Int("links", len(links)),
		log.Int("resolved", len(infos)),
		log.Duration("elapsed", time.Since(start)),
	)
	return infos, nil
}

// FetchLink resolves one link. It returns nil and no error when the
// service has no match for it.
func (c *Client) FetchLink(ctx context.Context, link string, page, label *string) (*domain.LinkInfo, error) {
	infos, err := c.FetchLinks(ctx, []domain.LinkToFetch{{Link: link, Label: label}}, page)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}
	return &infos[0], nil
}
