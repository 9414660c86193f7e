// Package ports defines the interfaces that connect the urlfreezer core to
// infrastructure adapters.
//
//   - [HTTPClient]: HTTP request execution, satisfied by *http.Client
//
// The client package depends only on these interfaces; tests substitute
// httptest servers or fakes without touching the mapping logic.
package ports
