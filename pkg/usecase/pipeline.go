package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/interfaces"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// Pipeline drives one bulk run: it classifies each input token, resolves
// emails to user IDs, applies the configured action to every resolved user,
// and folds the per-item results into a summary
type Pipeline struct {
	client interfaces.IdentityClient
}

// New creates a Pipeline backed by the given identity client
func New(client interfaces.IdentityClient) *Pipeline {
	return &Pipeline{client: client}
}

// Run processes every token of the configuration in input order and returns
// the aggregated summary. Only configuration and authentication errors abort
// the run; per-item failures are folded into the summary.
func (p *Pipeline) Run(ctx context.Context, cfg *model.RunConfig) (*model.Summary, error) {
	logger := ctxlog.From(ctx)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := p.client.Authenticate(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with identity provider")
	}

	summary := model.NewSummary(cfg.Action, !cfg.Execute)

	for _, token := range cfg.Tokens {
		logger.Info("processing user",
			slog.String("mode", cfg.Mode()),
			slog.String("action", cfg.Action.String()),
			slog.String("identifier", token.String()),
		)

		res := p.resolve(ctx, token)
		if !res.Resolved() {
			logger.Warn("could not resolve user",
				slog.String("identifier", token.String()),
				slog.Any("error", res.Err),
			)
			summary.AddResolutionFailure(res)
			continue
		}

		outcome := p.execute(ctx, res, cfg)
		if outcome.Status == model.OutcomeFailed {
			logger.Warn("action failed",
				slog.String("identifier", token.String()),
				slog.String("userID", res.UserID.String()),
				slog.Any("error", outcome.Err),
			)
		}
		summary.AddOutcome(outcome)
	}

	summary.Finalize()
	return summary, nil
}

// resolve maps one input token to a user ID. Canonical identifiers pass
// through untouched; anything else goes to the email lookup. Lookup failures
// become values, never errors of Run.
func (p *Pipeline) resolve(ctx context.Context, token types.Token) model.Resolution {
	if token.IsUserID() {
		return model.NewResolution(token, token.UserID())
	}

	userID, err := p.client.LookupUserByEmail(ctx, token.Email())
	if err != nil {
		return model.NewResolutionFailure(token, err)
	}
	return model.NewResolution(token, userID)
}
