// Package domain contains the core entities and error kinds for urlfreezer.
//
// This package is the innermost layer. It has no dependencies on HTTP,
// JSON transport details, CSV or logging, and holds only the vocabulary
// shared by the codec, the client and the CSV adapter.
//
// # Entities
//
//   - [LinkToFetch]: an original URL plus an optional label, submitted for resolution
//   - [LinkInfo]: a resolved link returned to the caller
//   - [LinkAction]: how a consumer should treat a resolved link
//
// # Errors
//
// Every failure returned by the library wraps exactly one of the sentinel
// kinds declared in errors.go, so callers can branch with errors.Is.
package domain
