package timeoff

import (
	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

// CanWriteDayOff gates direct DayOff mutation. Non-managers never write
// days off directly; their path is a DaysOffRequest.
func CanWriteDayOff(actor *user.User) error {
	if actor.IsManager() {
		return nil
	}
	return access.Deny("only managers may enter days off")
}

// CanActOnRequest is the object-level check for a DaysOffRequest:
// only the owner or a manager may touch a given instance. It runs
// before any field-level inspection.
func CanActOnRequest(actor *user.User, req DaysOffRequest) error {
	if actor.IsManager() {
		return nil
	}
	if req.OwnerUserID != nil && *req.OwnerUserID == actor.ID {
		return nil
	}
	return access.Deny("not the owner of this request")
}

// CanChangeStatus rejects self-approval: a non-manager may edit a
// request's other fields, but the status must stay what it was.
func CanChangeStatus(actor *user.User, existing DaysOffRequest, newStatus *string) error {
	if actor.IsManager() {
		return nil
	}
	if newStatus != nil && *newStatus != existing.Status {
		return access.Deny("only managers may change a request's status")
	}
	return nil
}

// CanDelete always denies for both record kinds; the only removal path
// is the manager-gated batch delete by originating request.
func CanDelete() error {
	return access.DenyDelete()
}

// ListScope: managers see all, everyone else their own.
func ListScope(actor *user.User) access.Scope {
	if actor.IsManager() {
		return access.ScopeAll
	}
	return access.ScopeOwn
}
