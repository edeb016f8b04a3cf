package coult

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guaychou/coult/internal/api"
)

// healthPath is the Vault health endpoint, shared by all engines.
const healthPath = "/v1/sys/health"

// Client is a read-only Vault client bound to one secret path. It holds an
// immutable configuration and a pooled HTTP transport, and is safe for
// unlimited concurrent callers. Construct it with NewBuilder or New.
type Client struct {
	config Config
	api    *api.Client
	log    zerolog.Logger
}

// Config returns the resolved configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// HealthCheck queries /v1/sys/health and reports the node state. Unlike the
// secret operations, the health table treats standby, DR secondary,
// uninitialized and sealed responses as states rather than errors; only
// transport failures and unrecognized status codes are returned as errors.
func (c *Client) HealthCheck(ctx context.Context) (*HealthState, error) {
	resp, err := c.api.Get(ctx, healthPath)
	if err != nil {
		return nil, err
	}

	state, err := classifyHealth(resp.StatusCode, resp.Body)
	if err != nil {
		c.log.Error().Err(err).Msg("vault health check failed")
		return nil, err
	}

	c.log.Debug().
		Int("status", state.StatusCode).
		Bool("sealed", state.Sealed).
		Bool("standby", state.Standby).
		Msg("vault health check")
	return state, nil
}

// WaitForActive polls the health endpoint until the node reports itself as
// the active, unsealed node, then returns its state. Transport failures and
// non-active health states are retried at the poll interval until the
// context or the configured timeout expires.
func (c *Client) WaitForActive(ctx context.Context, opts ...WaitOption) (*HealthState, error) {
	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	ticker := cfg.newTicker()
	defer ticker.Stop()

	for {
		state, err := c.HealthCheck(ctx)
		if err == nil && state.Active() {
			c.log.Info().Str("host", c.config.Host).Msg("vault node is active")
			return state, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// secretBody performs the GET against the configured secret path and runs
// the response through classification, returning the raw body on success.
func (c *Client) secretBody(ctx context.Context) ([]byte, error) {
	resp, err := c.api.Get(ctx, "/v1/"+c.config.SecretPath)
	if err != nil {
		return nil, err
	}

	if err := classifyStatus(resp.StatusCode, resp.Body); err != nil {
		c.log.Error().Err(err).Str("path", c.config.SecretPath).Msg("secret retrieval failed")
		return nil, err
	}

	c.log.Debug().Str("path", c.config.SecretPath).Msg("secret retrieved")
	return resp.Body, nil
}
