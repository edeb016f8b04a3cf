package coult

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/guaychou/coult/internal/api"
)

// Builder accumulates connection parameters for a Client. Setters overwrite
// the field and return the builder for chaining; nothing is validated until
// Build. A builder is one-shot: after a successful or failed Build it is
// consumed and cannot be reused.
type Builder struct {
	host          string
	hostSet       bool
	port          uint16
	portSet       bool
	token         string
	tokenSet      bool
	secretPath    string
	secretPathSet bool
	protocol      string
	protocolSet   bool

	httpClient *http.Client
	logger     zerolog.Logger
	consumed   bool
}

// NewBuilder returns an empty builder. Unset fields fall back to the VAULT_*
// environment variables at Build time, then to defaults where one exists.
func NewBuilder() *Builder {
	return &Builder{
		logger: zerolog.Nop(),
	}
}

// Address sets the Vault host name or IP address.
func (b *Builder) Address(host string) *Builder {
	b.host = host
	b.hostSet = true
	return b
}

// Port sets the Vault API port.
func (b *Builder) Port(port uint16) *Builder {
	b.port = port
	b.portSet = true
	return b
}

// Token sets the token sent in the X-Vault-Token header.
func (b *Builder) Token(token string) *Builder {
	b.token = token
	b.tokenSet = true
	return b
}

// SecretPath sets the path read by GetSecret and GetSecretV2, relative to
// the /v1/ API prefix (for example "secret/data/database").
func (b *Builder) SecretPath(path string) *Builder {
	b.secretPath = path
	b.secretPathSet = true
	return b
}

// Protocol sets the scheme, "http" or "https". Validation happens at Build.
func (b *Builder) Protocol(protocol string) *Builder {
	b.protocol = protocol
	b.protocolSet = true
	return b
}

// HTTPS is shorthand for Protocol("https").
func (b *Builder) HTTPS() *Builder {
	return b.Protocol(string(ProtocolHTTPS))
}

// Logger sets the diagnostic logger. The default is zerolog.Nop(); the
// library never logs unless a logger is supplied here.
func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// HTTPClient overrides the pooled HTTP client constructed at Build time.
// Mainly useful for tests and custom transport tuning.
func (b *Builder) HTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// envKey converts an environment variable name to the viper lookup key.
func envKey(name string) string {
	return strings.ToLower(name)
}

// Build resolves the configuration and constructs the client. Resolution
// order per field: explicit setter value, then environment variable, then
// default. Token and secret path have no default and Build fails with
// ErrMissingToken / ErrMissingSecretPath when they resolve to empty.
func (b *Builder) Build() (*Client, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	v := viper.New()
	v.SetDefault(envKey(EnvAddress), defaultAddress)
	v.SetDefault(envKey(EnvPort), strconv.FormatUint(uint64(defaultPort), 10))
	v.SetDefault(envKey(EnvProtocol), string(defaultProtocol))
	v.AutomaticEnv()

	cfg := Config{}

	if b.hostSet {
		cfg.Host = b.host
	} else {
		cfg.Host = v.GetString(envKey(EnvAddress))
	}

	if b.portSet {
		cfg.Port = b.port
	} else {
		raw := v.GetString(envKey(EnvPort))
		port, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidPort, EnvPort, raw)
		}
		cfg.Port = uint16(port)
	}

	rawProtocol := b.protocol
	if !b.protocolSet {
		rawProtocol = v.GetString(envKey(EnvProtocol))
	}
	protocol, err := parseProtocol(rawProtocol)
	if err != nil {
		return nil, err
	}
	cfg.Protocol = protocol

	if b.tokenSet {
		cfg.Token = b.token
	} else {
		cfg.Token = v.GetString(envKey(EnvToken))
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: set Token or %s", ErrMissingToken, EnvToken)
	}

	if b.secretPathSet {
		cfg.SecretPath = b.secretPath
	} else {
		cfg.SecretPath = v.GetString(envKey(EnvSecretPath))
	}
	if cfg.SecretPath == "" {
		return nil, fmt.Errorf("%w: set SecretPath or %s", ErrMissingSecretPath, EnvSecretPath)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.BaseURL(),
		Token:      cfg.Token,
		HTTPClient: b.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}

	return &Client{
		config: cfg,
		api:    apiClient,
		log:    b.logger,
	}, nil
}

// New is a positional convenience constructor, equivalent to calling every
// builder setter and then Build.
func New(protocol Protocol, host string, port uint16, token, secretPath string) (*Client, error) {
	return NewBuilder().
		Protocol(string(protocol)).
		Address(host).
		Port(port).
		Token(token).
		SecretPath(secretPath).
		Build()
}
