package user

import (
	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
)

// CanCreate allows only manager-tier principals to provision accounts;
// there is no self-registration.
func CanCreate(actor *User) error {
	if actor.IsManager() {
		return nil
	}
	return access.Deny("only managers may create users")
}

// CanUpdate applies the user-update matrix:
//
//   - anyone may update their own account
//   - a global-admin account accepts no updates from anyone else
//   - a manager may update employee-role users
//   - an admin may update employee, manager and terminal users
//   - a global admin may update any other, non-global-admin user
//
// The global-admin check runs before the role branches: the flag outranks
// role, so an admin cannot reach a global-admin account through the
// employee/manager/terminal allowance.
func CanUpdate(actor, target *User) error {
	if actor.ID == target.ID {
		return nil
	}
	if target.IsGlobalAdmin() {
		return access.Deny("cannot update this user")
	}
	if actor.Role() == RoleManager && target.Role() == RoleEmployee {
		return nil
	}
	if actor.Role() == RoleAdmin {
		switch target.Role() {
		case RoleEmployee, RoleManager, RoleTerminal:
			return nil
		}
	}
	if actor.IsGlobalAdmin() {
		return nil
	}
	return access.Deny("cannot update this user")
}

// CanDelete always denies; accounts are disabled, never deleted.
func CanDelete() error {
	return access.DenyDelete()
}

// ListScope scopes user listings to self for everyone below manager tier.
func ListScope(actor *User) access.Scope {
	if actor.IsManager() {
		return access.ScopeAll
	}
	return access.ScopeOwn
}
