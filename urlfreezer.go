// Package urlfreezer is a client for the urlfreezer link freezing service.
//
// Example usage:
//
//	c, err := urlfreezer.Connect("my-user-id")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, err := c.FetchLink(ctx, "https://example.org/a", urlfreezer.Optional("https://my.site/"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if info != nil {
//	    fmt.Println(info.Link, info.Action)
//	}
//
// See package client for the asynchronous variant and package csvbatch for
// streaming CSV files through the service.
package urlfreezer

import (
	"github.com/bft-labs/urlfreezer/internal/domain"
	"github.com/bft-labs/urlfreezer/pkg/client"
)

// LinkAction tells a consumer how to treat a resolved link.
type LinkAction = domain.LinkAction

// Link actions returned by the service.
const (
	Redirect = domain.Redirect
	Content  = domain.Content
)

// LinkToFetch is one original URL submitted for resolution.
type LinkToFetch = domain.LinkToFetch

// LinkInfo is a resolved link.
type LinkInfo = domain.LinkInfo

// StatusError carries a non-2xx response; it is wrapped in ErrTransport.
type StatusError = domain.StatusError

// Client resolves links synchronously.
type Client = client.Client

// AsyncClient resolves links without blocking the caller.
type AsyncClient = client.AsyncClient

// Option configures a Client.
type Option = client.Option

// Error kinds. Use errors.Is to test for them.
var (
	ErrInvalidHost    = domain.ErrInvalidHost
	ErrTransport      = domain.ErrTransport
	ErrProtocolDecode = domain.ErrProtocolDecode
	ErrURLParse       = domain.ErrURLParse
	ErrIO             = domain.ErrIO
	ErrRowDecode      = domain.ErrRowDecode
)

// DefaultHost is the production service address.
const DefaultHost = client.DefaultHost

// NewLinkToFetch creates a LinkToFetch. An empty label means no label.
func NewLinkToFetch(link, label string) LinkToFetch {
	return domain.NewLinkToFetch(link, label)
}

// Optional returns nil for "" and a pointer to s otherwise.
func Optional(s string) *string {
	return domain.Optional(s)
}

// Connect creates a Client for DefaultHost.
func Connect(userID string, opts ...Option) (*Client, error) {
	return client.Connect(userID, opts...)
}

// ConnectHost creates a Client for host. It fails with ErrInvalidHost if
// host is not an absolute URL.
func ConnectHost(host, userID string, opts ...Option) (*Client, error) {
	return client.ConnectHost(host, userID, opts...)
}
