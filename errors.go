package coult

import (
	"errors"
	"fmt"

	"github.com/guaychou/coult/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned by Build when no vault token was supplied
	// explicitly or via VAULT_TOKEN.
	ErrMissingToken = errors.New("vault token is required")

	// ErrMissingSecretPath is returned by Build when no secret path was
	// supplied explicitly or via VAULT_SECRET_PATH.
	ErrMissingSecretPath = errors.New("secret path is required")

	// ErrInvalidPort is returned by Build when VAULT_PORT is not a valid
	// unsigned 16-bit integer.
	ErrInvalidPort = errors.New("invalid vault port")

	// ErrInvalidProtocol is returned when the protocol is neither "http"
	// nor "https".
	ErrInvalidProtocol = errors.New("invalid vault protocol")

	// ErrBuilderConsumed is returned when Build is called on a builder that
	// already produced a client.
	ErrBuilderConsumed = errors.New("builder has already been consumed")

	// ErrForbidden indicates the token is not allowed to read the path (403).
	ErrForbidden = errors.New("permission denied")

	// ErrInvalidPath indicates the secret path does not exist (404).
	ErrInvalidPath = errors.New("invalid secret path")

	// ErrRateLimited indicates the request was rejected by a rate or standby
	// response (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrDRSecondaryNode indicates the node is an active DR secondary (472).
	ErrDRSecondaryNode = errors.New("vault node is an active DR secondary")

	// ErrPerformanceStandby indicates the node is a performance standby (473).
	ErrPerformanceStandby = errors.New("vault node is a performance standby")

	// ErrNotInitialized indicates the vault server is not initialized (501).
	ErrNotInitialized = errors.New("vault is not initialized")

	// ErrSealed indicates the vault server is sealed (503).
	ErrSealed = errors.New("vault is sealed")

	// ErrDecodeFailed indicates a response body did not match the requested
	// target shape.
	ErrDecodeFailed = errors.New("secret decoding failed")

	// ErrMissingSecretData indicates a v2 response body is missing the
	// nested data.data envelope.
	ErrMissingSecretData = errors.New("response is missing data.data envelope")
)

// CoultError is implemented by all library error types.
type CoultError interface {
	error
	CoultError() // marker method
}

// StatusError represents a non-200 response from the Vault HTTP API. The
// classification depends only on the status code; Message carries the error
// text from the response body when Vault provided one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vault error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vault error %d", e.StatusCode)
}

// CoultError implements the CoultError interface.
func (e *StatusError) CoultError() {}

// Is implements errors.Is for sentinel error matching.
func (e *StatusError) Is(target error) bool {
	switch e.StatusCode {
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrInvalidPath
	case 429:
		return target == ErrRateLimited
	case 472:
		return target == ErrDRSecondaryNode
	case 473:
		return target == ErrPerformanceStandby
	case 501:
		return target == ErrNotInitialized
	case 503:
		return target == ErrSealed
	}
	// Unhandled status codes match no sentinel.
	return false
}

// DecodeError represents a response body that could not be decoded into the
// caller's requested type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode secret: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailed
}

// CoultError implements the CoultError interface.
func (e *DecodeError) CoultError() {}

// TransportError represents a network-level failure (DNS, connect, TLS
// handshake, body read). It wraps the underlying error and records the
// request URL.
type TransportError = api.TransportError
