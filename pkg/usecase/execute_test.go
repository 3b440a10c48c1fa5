package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
	"github.com/secmon-lab/bulkuser/pkg/usecase"
)

func retryableErr(msg string) error {
	return goerr.New(msg, goerr.T(model.ErrTagRetryable))
}

func TestExecutorRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("transient failures are retried within budget", func(t *testing.T) {
		client := newMockClient()
		attempts := 0
		client.DeleteUserFunc = func(ctx context.Context, userID types.UserID, tenant types.TenantID) error {
			attempts++
			if attempts < 3 {
				return retryableErr("rate limited")
			}
			return nil
		}

		cfg := testConfig(types.ActionDelete, true, types.Token(uuid1))
		cfg.Tenant = types.TenantID("tenant-a")

		summary, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)

		// Failed twice, succeeded on the third attempt
		gt.Equal(t, summary.Applied, 1)
		gt.Equal(t, summary.ActionFailed, 0)
		calls := client.DeleteUserCalls()
		gt.Equal(t, len(calls), 3)
		for _, call := range calls {
			gt.Equal(t, call.Tenant, types.TenantID("tenant-a"))
		}
	})

	t.Run("retries exhausted ends as failed", func(t *testing.T) {
		client := newMockClient()
		client.LockUserFunc = func(ctx context.Context, userID types.UserID) error {
			return retryableErr("upstream unavailable")
		}

		cfg := testConfig(types.ActionLock, true, types.Token(uuid1))
		cfg.MaxRetries = 2

		summary, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)
		gt.Equal(t, summary.ActionFailed, 1)
		gt.Equal(t, summary.Applied, 0)
		// Initial attempt plus two retries
		gt.Equal(t, len(client.LockUserCalls()), 3)
	})

	t.Run("terminal failure is not retried", func(t *testing.T) {
		client := newMockClient()
		client.LockUserFunc = func(ctx context.Context, userID types.UserID) error {
			return goerr.New("user already locked")
		}

		cfg := testConfig(types.ActionLock, true, types.Token(uuid1))

		summary, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)
		gt.Equal(t, summary.ActionFailed, 1)
		gt.Equal(t, len(client.LockUserCalls()), 1)
	})

	t.Run("zero retry budget means a single attempt", func(t *testing.T) {
		client := newMockClient()
		client.LockUserFunc = func(ctx context.Context, userID types.UserID) error {
			return retryableErr("rate limited")
		}

		cfg := testConfig(types.ActionLock, true, types.Token(uuid1))
		cfg.MaxRetries = 0

		summary, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)
		gt.Equal(t, summary.ActionFailed, 1)
		gt.Equal(t, len(client.LockUserCalls()), 1)
	})
}

func TestExecutorTenantScope(t *testing.T) {
	ctx := context.Background()

	t.Run("delete without tenant scope is global", func(t *testing.T) {
		client := newMockClient()
		cfg := testConfig(types.ActionDelete, true, types.Token(uuid1))

		_, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)

		calls := client.DeleteUserCalls()
		gt.Equal(t, len(calls), 1)
		gt.True(t, calls[0].Tenant.IsEmpty())
	})

	t.Run("lock ignores tenant scope", func(t *testing.T) {
		client := newMockClient()
		cfg := testConfig(types.ActionLock, true, types.Token(uuid1))
		cfg.Tenant = types.TenantID("tenant-a")

		_, err := usecase.New(client).Run(ctx, cfg)
		gt.NoError(t, err)
		gt.Equal(t, len(client.LockUserCalls()), 1)
		gt.Equal(t, len(client.DeleteUserCalls()), 0)
	})
}
