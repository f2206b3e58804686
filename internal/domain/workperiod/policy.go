package workperiod

import (
	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

// CanWrite gates manual create/update of work periods. Non-managers are
// read-only here; their only write path is the terminal clock actions.
func CanWrite(actor *user.User) error {
	if actor.IsManager() {
		return nil
	}
	return access.Deny("only managers may edit work periods")
}

// CanClock gates the clock-in/clock-out kiosk actions, which are open
// to the terminal role only.
func CanClock(actor *user.User) error {
	if actor.IsTerminal() {
		return nil
	}
	return access.Deny("only timeclock terminals may clock in or out")
}

// CanDelete always denies; periods are flagged, never removed.
func CanDelete() error {
	return access.DenyDelete()
}

// ListScope gives managers and terminals every employee's periods,
// everyone else their own.
func ListScope(actor *user.User) access.Scope {
	if actor.IsManagerOrTerminal() {
		return access.ScopeAll
	}
	return access.ScopeOwn
}
