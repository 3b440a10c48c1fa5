package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/cli/config"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		fronteggCfg config.Frontegg
		runCfg      config.Run
	)

	flags := joinFlags(
		fronteggCfg.Flags(),
		runCfg.Flags(),
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Apply the configured action to every user in the list",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// All validation happens before the client is built, so a bad
			// action or empty user list never reaches the network.
			cfg, err := runCfg.Configure(fronteggCfg.Tenant())
			if err != nil {
				return err
			}
			if err := fronteggCfg.Validate(); err != nil {
				return err
			}

			client, err := fronteggCfg.Configure()
			if err != nil {
				return err
			}

			logger.Info("starting bulk user run",
				slog.Any("run", *cfg),
				slog.Any("frontegg", fronteggCfg),
			)

			summary, err := usecase.New(client).Run(ctx, cfg)
			if err != nil {
				return err
			}

			return printSummary(os.Stdout, summary)
		},
	}
}

// printSummary writes the run report document followed by the human
// summary line
func printSummary(w io.Writer, summary *model.Summary) error {
	doc, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode run report")
	}
	fmt.Fprintln(w, string(doc))
	fmt.Fprintf(w, "\nSUMMARY: %s\n", summary.Format())
	return nil
}
