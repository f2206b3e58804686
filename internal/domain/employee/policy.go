package employee

import (
	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

// CanCreate allows only manager-tier principals to create employee
// records.
func CanCreate(actor *user.User) error {
	if actor.IsManager() {
		return nil
	}
	return access.Deny("only managers may create employees")
}

// CanUpdate lets managers change anything. Everyone else may touch only
// non-protected fields: identity, SSN and employment status stay
// manager-only. A protected field present in the payload but equal to
// the stored value is not a change and passes.
func CanUpdate(actor *user.User, existing Employee, req UpdateEmployeeRequest) error {
	if actor.IsManager() {
		return nil
	}
	if req.FirstName != nil && *req.FirstName != existing.FirstName {
		return access.Deny("only managers may change first_name")
	}
	if req.LastName != nil && *req.LastName != existing.LastName {
		return access.Deny("only managers may change last_name")
	}
	if req.SSN != nil && !equalPtr(req.SSN, existing.SSN) {
		return access.Deny("only managers may change ssn")
	}
	if req.IsActive != nil && *req.IsActive != existing.IsActive {
		return access.Deny("only managers may change is_active")
	}
	return nil
}

// CanDelete always denies; employees are deactivated, never deleted.
func CanDelete() error {
	return access.DenyDelete()
}

// ListScope gives managers and timeclock terminals the full roster;
// everyone else sees only their own record.
func ListScope(actor *user.User) access.Scope {
	if actor.IsManagerOrTerminal() {
		return access.ScopeAll
	}
	return access.ScopeOwn
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
