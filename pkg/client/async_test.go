package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/urlfreezer/internal/domain"
)

func TestAsyncFetchLink(t *testing.T) {
	ts := newService(t, http.StatusOK, echoResponse, nil)

	a, err := ConnectHostAsync(ts.URL, "nothing", WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	p := a.FetchLink(context.Background(), "http://exp.com/bla", strPtr("http://local.com/page.html"), strPtr("nana"))
	info, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info, "there is some info")

	assert.Equal(t, "http://exp.com/bla", info.Original)
	assert.Equal(t, "http://local.com/page.html", info.PageOrEmpty())
	assert.Equal(t, "nana", info.LabelOrEmpty())
	assert.Equal(t, "https://example.com/ASXDAERERE", info.Link)
	assert.Equal(t, domain.Redirect, info.Action)

	select {
	case <-p.Done():
	default:
		t.Error("Done() not closed after Wait returned a result")
	}
}

func TestAsync_MatchesBlocking(t *testing.T) {
	ts := newService(t, http.StatusOK, echoResponse, nil)

	c, err := ConnectHost(ts.URL, "nothing", WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	links := []domain.LinkToFetch{domain.NewLinkToFetch("http://exp.com/bla", "nana")}
	want, err := c.FetchLinks(context.Background(), links, nil)
	require.NoError(t, err)

	got, err := c.Async().FetchLinks(context.Background(), links, nil).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAsync_Error(t *testing.T) {
	ts := newService(t, http.StatusOK, `{"links":[],"base":"not a url"}`, nil)

	a, err := ConnectHostAsync(ts.URL, "nothing", WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	_, err = a.FetchLinks(context.Background(), []domain.LinkToFetch{domain.NewLinkToFetch("a", "")}, nil).Wait(context.Background())
	assert.ErrorIs(t, err, domain.ErrURLParse)
}

func TestConnectHostAsync_InvalidHost(t *testing.T) {
	_, err := ConnectHostAsync("not a url", "nothing")
	assert.ErrorIs(t, err, domain.ErrInvalidHost)
}

func TestPending_WaitGivesUp(t *testing.T) {
	release := make(chan struct{})
	p := run(func() (int, error) {
		<-release
		return 1, nil
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsync_Blocking(t *testing.T) {
	ts := newService(t, http.StatusOK, echoResponse, nil)

	c, err := ConnectHost(ts.URL, "nothing", WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	a := c.Async()
	assert.Same(t, c, a.Blocking())

	info, err := a.Blocking().FetchLink(context.Background(), "http://exp.com/bla", strPtr("http://local.com/page.html"), strPtr("nana"))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "https://example.com/ASXDAERERE", info.Link)
}
