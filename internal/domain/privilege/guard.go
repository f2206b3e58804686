package privilege

import (
	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

// WriteRequest is the payload of a privileges create or update. Nil
// fields are left unchanged on update.
type WriteRequest struct {
	UserID        string     `json:"user_id"`
	Role          *user.Role `json:"role,omitempty"`
	IsGlobalAdmin *bool      `json:"is_global_admin,omitempty"`
}

// ValidateWrite gates a privileges create (existing == nil) or update
// (existing is the stored record) against the requester's own standing.
//
// The hierarchy is GlobalAdmin > Admin > Manager > {Employee, Terminal}:
// each tier may only touch strictly lower tiers, the admin role can never
// be granted through this path, and the global-admin flag can never be
// set or changed through it at all.
func ValidateWrite(requester *user.User, existing *user.Privileges, req WriteRequest) error {
	// The global-admin flag is immutable through the standard path.
	if req.IsGlobalAdmin != nil {
		if existing != nil {
			if *req.IsGlobalAdmin != existing.IsGlobalAdmin {
				return access.Deny("the global admin flag cannot be changed")
			}
		} else if *req.IsGlobalAdmin {
			return access.Deny("new privileges cannot be created with the global admin flag set")
		}
	}

	// A global admin passes every remaining check.
	if requester.IsGlobalAdmin() {
		return nil
	}

	if existing != nil {
		if existing.IsGlobalAdmin {
			return access.Deny("only a global admin may modify a global admin's privileges")
		}
		if existing.Role == user.RoleAdmin {
			return access.Deny("only a global admin may modify an admin's privileges")
		}
		if requester.Role() != user.RoleAdmin {
			switch existing.Role {
			case user.RoleManager, user.RoleTerminal:
				return access.Deny("managers may only modify employee privileges")
			}
		}
	}

	if req.Role != nil {
		if !req.Role.Valid() {
			return user.ErrInvalidRole
		}
		if *req.Role == user.RoleAdmin {
			return access.Deny("the admin role cannot be granted")
		}
		if requester.Role() != user.RoleAdmin {
			switch *req.Role {
			case user.RoleManager, user.RoleTerminal:
				return access.Deny("only an admin may grant this role")
			}
		}
		switch requester.Role() {
		case user.RoleEmployee, user.RoleTerminal:
			return access.Deny("insufficient role to assign roles")
		}
	}

	return nil
}

// CanAccess gates every action on privileges records before the write
// hierarchy is consulted. Safe methods are open to all authenticated
// principals; the visible set is still scoped by the caller, mirroring
// user.ListScope. Mutations require manager tier.
func CanAccess(actor *user.User, action access.Action) error {
	if actor.IsManager() || action.IsSafe() {
		return nil
	}
	return access.Deny("only managers may modify privileges")
}

// CanDelete always denies; privilege records are never removed.
func CanDelete() error {
	return access.DenyDelete()
}
