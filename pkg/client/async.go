package client

import (
	"context"

	"github.com/bft-labs/urlfreezer/internal/domain"
)

// Pending is the eventual result of an asynchronous call.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func run[T any](fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.value, p.err = fn()
	}()
	return p
}

// Done is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// Wait suspends until the result is available or ctx is done.
// Giving up on ctx does not cancel the round trip; cancel the context
// passed to the originating call for that.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AsyncClient is the suspending counterpart of Client. Calls return
// immediately; the round trip runs on its own goroutine through the same
// request and response mapping as Client.
type AsyncClient struct {
	client *Client
}

// ConnectAsync creates an AsyncClient for DefaultHost.
func ConnectAsync(userID string, opts ...Option) (*AsyncClient, error) {
	return ConnectHostAsync(DefaultHost, userID, opts...)
}

// ConnectHostAsync creates an AsyncClient for host. See ConnectHost.
func ConnectHostAsync(host, userID string, opts ...Option) (*AsyncClient, error) {
	c, err := ConnectHost(host, userID, opts...)
	if err != nil {
		return nil, err
	}
	return c.Async(), nil
}

// Async returns an AsyncClient sharing c's endpoint, user and transport.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

// Blocking returns the underlying blocking Client.
func (a *AsyncClient) Blocking() *Client { return a.client }

// FetchLinks starts resolving links. See Client.FetchLinks.
func (a *AsyncClient) FetchLinks(ctx context.Context, links []domain.LinkToFetch, page *string) *Pending[[]domain.LinkInfo] {
	// The caller may reuse its slice once this returns.
	links = append([]domain.LinkToFetch(nil), links...)
	return run(func() ([]domain.LinkInfo, error) {
		return a.client.FetchLinks(ctx, links, page)
	})
}

// FetchLink starts resolving one link. See Client.FetchLink.
func (a *AsyncClient) FetchLink(ctx context.Context, link string, page, label *string) *Pending[*domain.LinkInfo] {
	return run(func() (*domain.LinkInfo, error) {
		return a.client.FetchLink(ctx, link, page, label)
	})
}
