// Package client resolves original URLs into stable urlfreezer links.
//
// A [Client] holds the service endpoint and the user identity. Each call
// performs exactly one HTTP round trip, however many links it carries:
//
//	c, err := client.Connect("my-user-id")
//	if err != nil {
//	    return err
//	}
//
//	infos, err := c.FetchLinks(ctx, []urlfreezer.LinkToFetch{
//	    urlfreezer.NewLinkToFetch("https://example.org/a", ""),
//	    urlfreezer.NewLinkToFetch("https://example.org/b", "footer"),
//	}, urlfreezer.Optional("https://my.site/page.html"))
//
// Results come back in request order. Nothing is cached: identical calls
// are identical round trips.
//
// # Execution modes
//
// Client methods block the calling goroutine until the response arrives.
// [AsyncClient] returns a [Pending] immediately and completes it in the
// background; both modes share the same encode, decode and resolve path.
//
// # Errors
//
// Failures wrap one of the kinds in the root package (ErrInvalidHost,
// ErrTransport, ErrProtocolDecode, ErrURLParse). There are no retries;
// cancel ctx or configure the HTTP client's timeout to bound a call.
//
// # Version
//
// Current version: 1.0.0
package client
