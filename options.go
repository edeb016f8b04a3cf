package coult

import "time"

const (
	defaultWaitTimeout  = 60 * time.Second
	defaultPollInterval = 2 * time.Second
)

// waitConfig holds configuration for WaitForActive.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

func (c *waitConfig) newTicker() *time.Ticker {
	return time.NewTicker(c.pollInterval)
}

// WaitOption configures WaitForActive.
type WaitOption func(*waitConfig)

// WithWaitTimeout sets the overall deadline for the wait.
// Default: 60 seconds.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the interval between health checks.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}
