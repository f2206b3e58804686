package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
)

func testUser(id string, role Role, globalAdmin bool) *User {
	return &User{
		ID: id,
		Privileges: &Privileges{
			UserID:        id,
			Role:          role,
			IsGlobalAdmin: globalAdmin,
		},
	}
}

func TestCanCreate(t *testing.T) {
	assert.NoError(t, CanCreate(testUser("m", RoleManager, false)))
	assert.NoError(t, CanCreate(testUser("a", RoleAdmin, false)))
	assert.NoError(t, CanCreate(testUser("ga", RoleEmployee, true)))
	assert.ErrorIs(t, CanCreate(testUser("e", RoleEmployee, false)), access.ErrDenied)
	assert.ErrorIs(t, CanCreate(testUser("t", RoleTerminal, false)), access.ErrDenied)
	assert.ErrorIs(t, CanCreate(&User{ID: "u"}), access.ErrDenied)
}

func TestCanUpdate(t *testing.T) {
	employee := testUser("e", RoleEmployee, false)
	otherEmployee := testUser("e2", RoleEmployee, false)
	manager := testUser("m", RoleManager, false)
	otherManager := testUser("m2", RoleManager, false)
	admin := testUser("a", RoleAdmin, false)
	otherAdmin := testUser("a2", RoleAdmin, false)
	terminal := testUser("t", RoleTerminal, false)
	globalAdmin := testUser("ga", RoleEmployee, true)
	otherGlobalAdmin := testUser("ga2", RoleManager, true)

	tests := []struct {
		name    string
		actor   *User
		target  *User
		allowed bool
	}{
		{"self update", employee, employee, true},
		{"employee updates another employee", employee, otherEmployee, false},
		{"manager updates employee", manager, employee, true},
		{"manager updates manager", manager, otherManager, false},
		{"manager updates admin", manager, admin, false},
		{"manager updates terminal", manager, terminal, false},
		{"admin updates employee", admin, employee, true},
		{"admin updates manager", admin, manager, true},
		{"admin updates terminal", admin, terminal, true},
		{"admin updates admin", admin, otherAdmin, false},
		{"admin updates global admin", admin, globalAdmin, false},
		{"manager updates employee-role global admin", manager, globalAdmin, false},
		{"global admin updates admin", globalAdmin, admin, true},
		{"global admin updates global admin", globalAdmin, otherGlobalAdmin, false},
		{"global admin self update", globalAdmin, globalAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanUpdate(tt.actor, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, access.ErrDenied)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.ErrorIs(t, CanDelete(), access.ErrDenied)
}

func TestListScope(t *testing.T) {
	assert.Equal(t, access.ScopeAll, ListScope(testUser("m", RoleManager, false)))
	assert.Equal(t, access.ScopeAll, ListScope(testUser("ga", RoleEmployee, true)))
	assert.Equal(t, access.ScopeOwn, ListScope(testUser("e", RoleEmployee, false)))
	assert.Equal(t, access.ScopeOwn, ListScope(testUser("t", RoleTerminal, false)))
}

func TestNilPrivilegesDefaults(t *testing.T) {
	bare := &User{ID: "u"}
	assert.Equal(t, RoleEmployee, bare.Role())
	assert.False(t, bare.IsGlobalAdmin())
	assert.False(t, bare.IsManager())
	assert.False(t, bare.IsTerminal())
}
