package privilege

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

func testUser(id string, role user.Role, globalAdmin bool) *user.User {
	return &user.User{
		ID: id,
		Privileges: &user.Privileges{
			UserID:        id,
			Role:          role,
			IsGlobalAdmin: globalAdmin,
		},
	}
}

func rolePtr(r user.Role) *user.Role { return &r }
func boolPtr(b bool) *bool           { return &b }

func TestValidateWriteGlobalAdminFlag(t *testing.T) {
	globalAdmin := testUser("ga", user.RoleAdmin, true)

	t.Run("flag set on create is always rejected", func(t *testing.T) {
		err := ValidateWrite(globalAdmin, nil, WriteRequest{
			UserID:        "u1",
			IsGlobalAdmin: boolPtr(true),
		})
		assert.ErrorIs(t, err, access.ErrDenied)
	})

	t.Run("flag change on update is always rejected", func(t *testing.T) {
		existing := &user.Privileges{UserID: "u1", Role: user.RoleEmployee}
		err := ValidateWrite(globalAdmin, existing, WriteRequest{
			UserID:        "u1",
			IsGlobalAdmin: boolPtr(true),
		})
		assert.ErrorIs(t, err, access.ErrDenied)
	})

	t.Run("flag echoed unchanged passes", func(t *testing.T) {
		existing := &user.Privileges{UserID: "u1", Role: user.RoleEmployee}
		err := ValidateWrite(globalAdmin, existing, WriteRequest{
			UserID:        "u1",
			IsGlobalAdmin: boolPtr(false),
			Role:          rolePtr(user.RoleManager),
		})
		assert.NoError(t, err)
	})

	t.Run("flag explicitly false on create passes", func(t *testing.T) {
		err := ValidateWrite(globalAdmin, nil, WriteRequest{
			UserID:        "u1",
			IsGlobalAdmin: boolPtr(false),
			Role:          rolePtr(user.RoleEmployee),
		})
		assert.NoError(t, err)
	})
}

func TestValidateWriteHierarchy(t *testing.T) {
	manager := testUser("m", user.RoleManager, false)
	admin := testUser("a", user.RoleAdmin, false)
	globalAdmin := testUser("ga", user.RoleEmployee, true)
	regular := testUser("e", user.RoleEmployee, false)

	employeeRecord := &user.Privileges{UserID: "u1", Role: user.RoleEmployee}
	managerRecord := &user.Privileges{UserID: "u2", Role: user.RoleManager}
	terminalRecord := &user.Privileges{UserID: "u3", Role: user.RoleTerminal}
	adminRecord := &user.Privileges{UserID: "u4", Role: user.RoleAdmin}
	globalAdminRecord := &user.Privileges{UserID: "u5", Role: user.RoleEmployee, IsGlobalAdmin: true}

	tests := []struct {
		name      string
		requester *user.User
		existing  *user.Privileges
		req       WriteRequest
		wantErr   error
	}{
		{
			name:      "manager updates employee record",
			requester: manager,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.RoleEmployee)},
		},
		{
			name:      "manager touches manager record",
			requester: manager,
			existing:  managerRecord,
			req:       WriteRequest{UserID: "u2"},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "manager touches terminal record",
			requester: manager,
			existing:  terminalRecord,
			req:       WriteRequest{UserID: "u3"},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "manager grants manager role",
			requester: manager,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.RoleManager)},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "admin updates manager record",
			requester: admin,
			existing:  managerRecord,
			req:       WriteRequest{UserID: "u2", Role: rolePtr(user.RoleTerminal)},
		},
		{
			name:      "admin grants manager role",
			requester: admin,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.RoleManager)},
		},
		{
			name:      "admin grants admin role",
			requester: admin,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.RoleAdmin)},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "admin touches admin record",
			requester: admin,
			existing:  adminRecord,
			req:       WriteRequest{UserID: "u4"},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "admin touches global admin record",
			requester: admin,
			existing:  globalAdminRecord,
			req:       WriteRequest{UserID: "u5"},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "global admin touches admin record",
			requester: globalAdmin,
			existing:  adminRecord,
			req:       WriteRequest{UserID: "u4", Role: rolePtr(user.RoleManager)},
		},
		{
			name:      "global admin grants admin role",
			requester: globalAdmin,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.RoleAdmin)},
		},
		{
			name:      "regular employee assigns a role",
			requester: regular,
			existing:  nil,
			req:       WriteRequest{UserID: "u9", Role: rolePtr(user.RoleEmployee)},
			wantErr:   access.ErrDenied,
		},
		{
			name:      "invalid role value",
			requester: admin,
			existing:  employeeRecord,
			req:       WriteRequest{UserID: "u1", Role: rolePtr(user.Role("owner"))},
			wantErr:   user.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWrite(tt.requester, tt.existing, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanAccess(t *testing.T) {
	regular := testUser("e", user.RoleEmployee, false)
	manager := testUser("m", user.RoleManager, false)

	assert.NoError(t, CanAccess(regular, access.ActionRead))
	assert.NoError(t, CanAccess(regular, access.ActionList))
	assert.ErrorIs(t, CanAccess(regular, access.ActionCreate), access.ErrDenied)
	assert.ErrorIs(t, CanAccess(regular, access.ActionUpdate), access.ErrDenied)
	assert.NoError(t, CanAccess(manager, access.ActionCreate))
}

func TestCanDelete(t *testing.T) {
	assert.ErrorIs(t, CanDelete(), access.ErrDenied)
}
