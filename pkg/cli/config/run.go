package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run holds the bulk-run configuration: user list, action, mode and
// rate-limit tuning
type Run struct {
	Users          string
	Action         string
	Execute        bool
	RateLimitDelay float64
	MaxRetries     int
}

// Flags returns CLI flags for Run configuration
func (r *Run) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "users",
			Usage:       "Comma-separated list of user IDs and/or email addresses",
			Category:    "Run",
			Sources:     cli.EnvVars("USER_ID_ARRAY"),
			Destination: &r.Users,
		},
		&cli.StringFlag{
			Name:        "action",
			Usage:       "Action to perform: lock or delete",
			Category:    "Run",
			Sources:     cli.EnvVars("USER_ACTION"),
			Destination: &r.Action,
		},
		&cli.BoolFlag{
			Name:        "execute",
			Usage:       "Actually perform the action (default: dry-run)",
			Category:    "Run",
			Destination: &r.Execute,
		},
		&cli.FloatFlag{
			Name:        "rate-limit-delay",
			Usage:       "Delay in seconds before each mutating request",
			Category:    "Run",
			Value:       0.5,
			Sources:     cli.EnvVars("RATE_LIMIT_DELAY"),
			Destination: &r.RateLimitDelay,
		},
		&cli.IntFlag{
			Name:        "max-retries",
			Usage:       "Retry budget for transient failures of mutating requests",
			Category:    "Run",
			Value:       3,
			Sources:     cli.EnvVars("MAX_RETRIES"),
			Destination: &r.MaxRetries,
		},
	}
}

// Configure builds the immutable run configuration and validates it.
// A missing or invalid action fails here, before any network activity.
func (r *Run) Configure(tenant types.TenantID) (*model.RunConfig, error) {
	action := types.ParseAction(r.Action)
	if err := action.Validate(); err != nil {
		return nil, goerr.Wrap(err,
			"specify an action via --action or the USER_ACTION environment variable")
	}

	cfg := &model.RunConfig{
		Action:         action,
		Execute:        r.Execute,
		Tenant:         tenant,
		RateLimitDelay: time.Duration(r.RateLimitDelay * float64(time.Second)),
		MaxRetries:     r.MaxRetries,
		Tokens:         types.ParseTokenList(r.Users),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogValue returns structured log value
func (r Run) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("action", r.Action),
		slog.Bool("execute", r.Execute),
		slog.Float64("rate_limit_delay", r.RateLimitDelay),
		slog.Int("max_retries", r.MaxRetries),
	)
}
