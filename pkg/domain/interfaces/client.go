package interfaces

//go:generate moq -out mocks/client_mock.go -pkg mocks . IdentityClient

import (
	"context"

	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// IdentityClient defines the vendor identity API operations the pipeline consumes
type IdentityClient interface {
	// Authenticate exchanges vendor credentials for a bearer token.
	// Must succeed before any other call is made.
	Authenticate(ctx context.Context) error

	// LookupUserByEmail resolves an email address to its canonical user ID.
	// Returns model.ErrUserNotFound when no account matches.
	LookupUserByEmail(ctx context.Context, email types.Email) (types.UserID, error)

	// LockUser disables the account's ability to authenticate
	LockUser(ctx context.Context, userID types.UserID) error

	// DeleteUser removes the account. A non-empty tenant scopes the removal
	// to that tenant; an empty tenant deletes globally.
	DeleteUser(ctx context.Context, userID types.UserID, tenant types.TenantID) error
}
