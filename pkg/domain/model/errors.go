package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for pipeline operations
var (
	ErrUserNotFound         = goerr.New("user not found")
	ErrAuthenticationFailed = goerr.New("vendor authentication failed")
)

// ErrTagRetryable marks transient failures (transport errors, 429, 5xx)
// that the action executor may retry within its budget
var ErrTagRetryable = goerr.NewTag("retryable")
