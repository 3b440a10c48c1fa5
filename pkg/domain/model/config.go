package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// RunConfig is the immutable configuration of one pipeline run,
// built once at startup before any network activity
type RunConfig struct {
	Action         types.Action
	Execute        bool
	Tenant         types.TenantID
	RateLimitDelay time.Duration
	MaxRetries     int
	Tokens         []types.Token
}

// Validate checks the configuration before the pipeline starts
func (c *RunConfig) Validate() error {
	if err := c.Action.Validate(); err != nil {
		return err
	}
	if len(c.Tokens) == 0 {
		return goerr.New("user list must not be empty")
	}
	if c.RateLimitDelay < 0 {
		return goerr.New("rate limit delay must not be negative",
			goerr.V("delay", c.RateLimitDelay))
	}
	if c.MaxRetries < 0 {
		return goerr.New("max retries must not be negative",
			goerr.V("maxRetries", c.MaxRetries))
	}
	return nil
}

// Mode returns the run mode label for logging and reporting
func (c *RunConfig) Mode() string {
	if c.Execute {
		return "EXECUTE"
	}
	return "DRY-RUN"
}

// LogValue returns structured log value
func (c RunConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("action", c.Action.String()),
		slog.String("mode", c.Mode()),
		slog.Bool("tenant_scoped", !c.Tenant.IsEmpty()),
		slog.Duration("rate_limit_delay", c.RateLimitDelay),
		slog.Int("max_retries", c.MaxRetries),
		slog.Int("users", len(c.Tokens)),
	)
}
