package api

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenHeader is the header Vault reads the client token from.
const TokenHeader = "X-Vault-Token"

// Connection pool tuning. Idle connections are kept warm so repeated calls
// on one client reuse them, and evicted once idle longer than the timeout.
const (
	DefaultMaxIdleConns    = 10
	DefaultIdleConnTimeout = 90 * time.Second
	tlsHandshakeTimeout    = 10 * time.Second
)

// Config holds the transport configuration.
type Config struct {
	// BaseURL is the scheme://host:port prefix for all requests.
	BaseURL string
	// Token is sent in the X-Vault-Token header on every request.
	Token string
	// HTTPClient overrides the default pooled client when non-nil.
	HTTPClient *http.Client
}

// Client is the HTTP transport. It is safe for concurrent use; all requests
// share one pooled http.Client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Response is a raw transport-level response, before classification.
type Response struct {
	StatusCode int
	Body       []byte
}

// NewClient creates a transport client. When cfg.HTTPClient is nil a pooled
// client is constructed for the scheme of cfg.BaseURL; for https the server
// certificate is validated against the system trust roots.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport, err := newTransport(strings.HasPrefix(cfg.BaseURL, "https://"))
		if err != nil {
			return nil, err
		}
		// No client-wide timeout: request deadlines are the caller's job,
		// via context.
		httpClient = &http.Client{Transport: transport}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// newTransport builds the pooled transport, wiring the system trust roots
// when TLS is in play.
func newTransport(useTLS bool) (*http.Transport, error) {
	transport := &http.Transport{
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConns,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}
	if useTLS {
		roots, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("load system trust roots: %w", err)
		}
		transport.TLSClientConfig = &tls.Config{
			RootCAs:    roots,
			MinVersion: tls.VersionTLS12,
		}
		transport.TLSHandshakeTimeout = tlsHandshakeTimeout
	}
	return transport, nil
}

// Get issues an authenticated GET request and returns the raw status code
// and body. Network-level failures are wrapped in *TransportError; non-2xx
// statuses are not treated as errors here.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
