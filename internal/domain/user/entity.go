package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // regular staff, self-service only
	RoleManager  Role = "manager"  // can manage employees and approve time off
	RoleAdmin    Role = "admin"    // can manage managers and terminals
	RoleTerminal Role = "terminal" // timeclock kiosk, clock-in/out only
)

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin, RoleTerminal:
		return true
	}
	return false
}

// Privileges is the access record attached to a user. The global-admin
// flag is orthogonal to the role and guarded separately.
type Privileges struct {
	ID            string
	UserID        string
	Role          Role
	IsGlobalAdmin bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Privileges is nil when no record has been provisioned yet; every
	// predicate treats that as the most restrictive state.
	Privileges *Privileges

	// DTO / Join
	EmployeeID *string
}

// Role returns the effective role, defaulting to employee when no
// privileges record exists.
func (u *User) Role() Role {
	if u.Privileges == nil {
		return RoleEmployee
	}
	return u.Privileges.Role
}

// IsGlobalAdmin reports the global-admin flag, false without privileges.
func (u *User) IsGlobalAdmin() bool {
	return u.Privileges != nil && u.Privileges.IsGlobalAdmin
}

// IsManager reports whether the user is manager-tier: global admin, or
// holding the manager or admin role.
func (u *User) IsManager() bool {
	if u.Privileges == nil {
		return false
	}
	return u.Privileges.IsGlobalAdmin ||
		u.Privileges.Role == RoleManager ||
		u.Privileges.Role == RoleAdmin
}

// IsTerminal reports whether the user is a timeclock kiosk.
func (u *User) IsTerminal() bool {
	return u.Privileges != nil && u.Privileges.Role == RoleTerminal
}

// IsManagerOrTerminal is the visibility tier used for employee and
// work-period listings.
func (u *User) IsManagerOrTerminal() bool {
	return u.IsManager() || u.IsTerminal()
}
