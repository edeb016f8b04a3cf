package coult

import "fmt"

// Protocol selects the scheme used to reach the Vault server.
type Protocol string

const (
	// ProtocolHTTP talks to Vault over plain HTTP.
	ProtocolHTTP Protocol = "http"
	// ProtocolHTTPS talks to Vault over TLS, validated against the system
	// trust roots.
	ProtocolHTTPS Protocol = "https"
)

// Environment variables consulted by Builder.Build for fields that were not
// set explicitly.
const (
	EnvAddress    = "VAULT_ADDRESS"
	EnvPort       = "VAULT_PORT"
	EnvToken      = "VAULT_TOKEN"
	EnvSecretPath = "VAULT_SECRET_PATH"
	EnvProtocol   = "VAULT_PROTOCOL"
)

const (
	defaultAddress  = "127.0.0.1"
	defaultPort     = uint16(8200)
	defaultProtocol = ProtocolHTTP
)

// Config is the resolved, immutable client configuration produced by
// Builder.Build. Host, port and protocol fall back to environment variables
// and then to defaults; Token and SecretPath are required.
type Config struct {
	Protocol   Protocol
	Host       string
	Port       uint16
	Token      string
	SecretPath string
}

// BaseURL returns the scheme://host:port prefix for API requests.
func (c Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Host, c.Port)
}

// parseProtocol validates a protocol string from a builder call or the
// VAULT_PROTOCOL environment variable.
func parseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case ProtocolHTTP, ProtocolHTTPS:
		return Protocol(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProtocol, s)
	}
}
