package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bulkuser/pkg/cli"
)

func TestRunFailsFastOnBadConfiguration(t *testing.T) {
	ctx := context.Background()

	baseArgs := []string{
		"bulkuser", "run",
		"--client-id", "client-id",
		"--api-token", "api-token",
		"--users", "a@x.com",
	}

	t.Run("invalid action from flag", func(t *testing.T) {
		err := cli.Run(ctx, append(baseArgs, "--action", "disable"))
		gt.Error(t, err)
	})

	t.Run("invalid action from environment", func(t *testing.T) {
		t.Setenv("USER_ACTION", "disable")
		err := cli.Run(ctx, baseArgs)
		gt.Error(t, err)
	})

	t.Run("missing action", func(t *testing.T) {
		err := cli.Run(ctx, baseArgs)
		gt.Error(t, err)
	})

	t.Run("missing credentials", func(t *testing.T) {
		err := cli.Run(ctx, []string{
			"bulkuser", "run",
			"--users", "a@x.com",
			"--action", "lock",
		})
		gt.Error(t, err)
	})

	t.Run("empty user list", func(t *testing.T) {
		err := cli.Run(ctx, []string{
			"bulkuser", "run",
			"--client-id", "client-id",
			"--api-token", "api-token",
			"--action", "lock",
		})
		gt.Error(t, err)
	})
}
