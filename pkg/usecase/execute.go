package usecase

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// execute applies the configured action to one resolved user. Dry-run mode
// returns Skipped without any delay or network call. Execute mode paces each
// attempt with the configured delay and retries transient failures up to the
// retry budget; every other failure is terminal on the first attempt.
func (p *Pipeline) execute(ctx context.Context, res model.Resolution, cfg *model.RunConfig) model.Outcome {
	outcome := model.Outcome{Token: res.Token, UserID: res.UserID}

	if !cfg.Execute {
		outcome.Status = model.OutcomeSkipped
		return outcome
	}

	// Pace the first attempt; the constant backoff paces every retry with
	// the same delay, so each attempt waits cfg.RateLimitDelay.
	time.Sleep(cfg.RateLimitDelay)

	operation := func() error {
		err := p.apply(ctx, res.UserID, cfg)
		if err == nil {
			return nil
		}
		if goerr.HasTag(err, model.ErrTagRetryable) {
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(cfg.RateLimitDelay),
		uint64(cfg.MaxRetries),
	)

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		outcome.Status = model.OutcomeFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = model.OutcomeApplied
	return outcome
}

func (p *Pipeline) apply(ctx context.Context, userID types.UserID, cfg *model.RunConfig) error {
	switch cfg.Action {
	case types.ActionLock:
		return p.client.LockUser(ctx, userID)
	case types.ActionDelete:
		return p.client.DeleteUser(ctx, userID, cfg.Tenant)
	}
	// Unreachable after RunConfig.Validate, kept as a guard.
	return goerr.New("unsupported action", goerr.V("action", cfg.Action.String()))
}
