package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Action is the bulk operation to apply to each user
type Action string

const (
	ActionLock   Action = "lock"
	ActionDelete Action = "delete"
)

// String returns the string representation
func (a Action) String() string {
	return string(a)
}

// Validate checks that the action is one of the supported values
func (a Action) Validate() error {
	switch a {
	case ActionLock, ActionDelete:
		return nil
	}
	return goerr.New("action must be 'lock' or 'delete'", goerr.V("action", string(a)))
}

// ParseAction normalizes a raw action string (CLI flag or environment value).
// An empty result means no action was supplied; Validate rejects it.
func ParseAction(raw string) Action {
	return Action(strings.ToLower(strings.TrimSpace(raw)))
}
