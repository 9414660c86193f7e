package ports

import "net/http"

// HTTPClient executes HTTP requests. The standard *http.Client satisfies it
// and is safe for concurrent use, which the resolution client relies on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
