package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by urlfreezer. Operations wrap the underlying cause
// together with one of these, so both are reachable through errors.Is/As.
var (
	// ErrInvalidHost is returned when the service base address is not an absolute URL.
	ErrInvalidHost = errors.New("urlfreezer: invalid host")

	// ErrTransport is returned for network failures and non-2xx responses.
	ErrTransport = errors.New("urlfreezer: transport error")

	// ErrProtocolDecode is returned when a response body is not the expected JSON envelope.
	ErrProtocolDecode = errors.New("urlfreezer: protocol decode error")

	// ErrURLParse is returned when a base URL or link id cannot be composed into an absolute URL.
	ErrURLParse = errors.New("urlfreezer: url parse error")

	// ErrIO is returned for local file or stream failures.
	ErrIO = errors.New("urlfreezer: io error")

	// ErrRowDecode is returned by the CSV adapter in strict mode when an input row cannot be decoded.
	ErrRowDecode = errors.New("urlfreezer: row decode error")
)

// StatusError carries a non-2xx HTTP response. It is always wrapped in ErrTransport.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

// Wrap annotates cause with the given error kind and message.
// The result matches both kind and cause with errors.Is.
func Wrap(kind error, msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", kind, msg)
	}
	return fmt.Errorf("%w: %s: %w", kind, msg, cause)
}
