package model

import (
	"errors"
	"fmt"

	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// Resolution is the per-token outcome of mapping an input token to a user ID.
// Exactly one Resolution is produced for every input token.
type Resolution struct {
	Token  types.Token
	UserID types.UserID
	Err    error
}

// Resolved reports whether the token was mapped to a user ID
func (r Resolution) Resolved() bool {
	return r.Err == nil
}

// NewResolution creates a successful resolution
func NewResolution(token types.Token, userID types.UserID) Resolution {
	return Resolution{Token: token, UserID: userID}
}

// NewResolutionFailure creates a failed resolution
func NewResolutionFailure(token types.Token, err error) Resolution {
	return Resolution{Token: token, Err: err}
}

// OutcomeStatus is the terminal state of an action against one resolved user
type OutcomeStatus string

const (
	// OutcomeApplied means the mutating call succeeded
	OutcomeApplied OutcomeStatus = "success"
	// OutcomeSkipped means dry-run mode suppressed the mutating call
	OutcomeSkipped OutcomeStatus = "dry_run"
	// OutcomeFailed means the mutating call failed terminally
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome is the per-user result of applying the configured action.
// Produced only for successfully resolved tokens.
type Outcome struct {
	Token  types.Token
	UserID types.UserID
	Status OutcomeStatus
	Err    error
}

// Item is one line of the run report, in the output document
type Item struct {
	Identifier string `json:"identifier"`
	UserID     string `json:"userId,omitempty"`
	Action     string `json:"action,omitempty"`
	Status     string `json:"status,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Summary aggregates per-item results of one run. The orchestrator owns it
// while the pipeline executes; afterwards it is read-only.
type Summary struct {
	Success          bool   `json:"success"`
	Action           string `json:"action"`
	DryRun           bool   `json:"dry_run"`
	ProcessedCount   int    `json:"processed_count"`
	FailedCount      int    `json:"failed_count"`
	Processed        []Item `json:"processed"`
	Failed           []Item `json:"failed"`
	Attempted        int    `json:"-"`
	Applied          int    `json:"-"`
	Skipped          int    `json:"-"`
	ResolutionFailed int    `json:"-"`
	ActionFailed     int    `json:"-"`
}

// NewSummary creates an empty summary for the given action and mode
func NewSummary(action types.Action, dryRun bool) *Summary {
	return &Summary{
		Action:    action.String(),
		DryRun:    dryRun,
		Processed: []Item{},
		Failed:    []Item{},
	}
}

// AddResolutionFailure records a token that could not be resolved
func (s *Summary) AddResolutionFailure(r Resolution) {
	s.Attempted++
	s.ResolutionFailed++

	reason := "lookup_failed"
	if errors.Is(r.Err, ErrUserNotFound) {
		reason = "not_found"
	}
	s.Failed = append(s.Failed, Item{
		Identifier: r.Token.String(),
		Reason:     reason,
	})
}

// AddOutcome records the terminal state of one resolved user
func (s *Summary) AddOutcome(o Outcome) {
	s.Attempted++
	item := Item{
		Identifier: o.Token.String(),
		UserID:     o.UserID.String(),
		Action:     s.Action,
		Status:     string(o.Status),
	}
	switch o.Status {
	case OutcomeApplied:
		s.Applied++
		s.Processed = append(s.Processed, item)
	case OutcomeSkipped:
		s.Skipped++
		s.Processed = append(s.Processed, item)
	case OutcomeFailed:
		s.ActionFailed++
		s.Failed = append(s.Failed, item)
	}
}

// Finalize computes the derived counters. Call once, after the last token.
func (s *Summary) Finalize() {
	s.ProcessedCount = len(s.Processed)
	s.FailedCount = len(s.Failed)
	s.Success = s.FailedCount == 0
}

// Format renders the human-readable end-of-run summary line
func (s *Summary) Format() string {
	if s.DryRun {
		return fmt.Sprintf("would %s %d user(s); failed to resolve %d.",
			s.Action, s.Skipped, s.ResolutionFailed)
	}
	return fmt.Sprintf("%s success for %d user(s); failures: %d.",
		s.Action, s.Applied, s.ResolutionFailed+s.ActionFailed)
}
