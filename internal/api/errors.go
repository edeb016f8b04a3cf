package api

import "fmt"

// TransportError represents a network-level failure: DNS resolution,
// connect, TLS handshake or body read. The request is never retried.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// CoultError implements the root package's marker interface.
func (e *TransportError) CoultError() {}
