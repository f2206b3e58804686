package access

import (
	"errors"
	"fmt"
)

// Action is the operation a principal is attempting on a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsSafe reports whether the action only reads data.
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionRead
}

// Scope is the visibility a principal gets on a list or read: every
// record, or only records the principal owns.
type Scope string

const (
	ScopeAll Scope = "all"
	ScopeOwn Scope = "own"
)

// ErrDenied is the base authorization denial. Every policy denial wraps
// it, so transports can map the whole family to a 403 with errors.Is.
var ErrDenied = errors.New("permission denied")

// Deny builds a denial carrying a reason. The reason is safe to return
// to the caller.
func Deny(reason string) error {
	return fmt.Errorf("%w: %s", ErrDenied, reason)
}

// DenyDelete is the blanket denial for resources that can never be
// deleted through the API.
func DenyDelete() error {
	return Deny("delete is not allowed")
}
