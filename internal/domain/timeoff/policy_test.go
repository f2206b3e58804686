package timeoff

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

func strPtr(s string) *string { return &s }

func TestCanWriteDayOff(t *testing.T) {
	assert.NoError(t, CanWriteDayOff(testUser("m", user.RoleManager, false)))
	assert.NoError(t, CanWriteDayOff(testUser("ga", user.RoleEmployee, true)))
	assert.ErrorIs(t, CanWriteDayOff(testUser("e", user.RoleEmployee, false)), access.ErrDenied)
	assert.ErrorIs(t, CanWriteDayOff(testUser("t", user.RoleTerminal, false)), access.ErrDenied)
}

func TestCanActOnRequest(t *testing.T) {
	owner := testUser("u1", user.RoleEmployee, false)
	stranger := testUser("u2", user.RoleEmployee, false)
	manager := testUser("m", user.RoleManager, false)

	req := DaysOffRequest{
		ID:          "r1",
		EmployeeID:  "emp1",
		OwnerUserID: strPtr("u1"),
	}

	assert.NoError(t, CanActOnRequest(owner, req))
	assert.NoError(t, CanActOnRequest(manager, req))
	assert.ErrorIs(t, CanActOnRequest(stranger, req), access.ErrDenied)

	// Unowned record is closed to everyone below manager tier.
	orphan := DaysOffRequest{ID: "r2", EmployeeID: "emp2"}
	assert.ErrorIs(t, CanActOnRequest(owner, orphan), access.ErrDenied)
	assert.NoError(t, CanActOnRequest(manager, orphan))
}

func TestCanChangeStatus(t *testing.T) {
	owner := testUser("u1", user.RoleEmployee, false)
	manager := testUser("m", user.RoleManager, false)

	pending := DaysOffRequest{
		ID:          "r1",
		Status:      StatusPending,
		OwnerUserID: strPtr("u1"),
	}

	t.Run("owner cannot approve own request", func(t *testing.T) {
		err := CanChangeStatus(owner, pending, strPtr(StatusApproved))
		assert.ErrorIs(t, err, access.ErrDenied)
	})

	t.Run("owner may echo the current status", func(t *testing.T) {
		assert.NoError(t, CanChangeStatus(owner, pending, strPtr(StatusPending)))
	})

	t.Run("owner may edit without touching status", func(t *testing.T) {
		assert.NoError(t, CanChangeStatus(owner, pending, nil))
	})

	t.Run("manager approves", func(t *testing.T) {
		assert.NoError(t, CanChangeStatus(manager, pending, strPtr(StatusApproved)))
	})

	t.Run("manager denies", func(t *testing.T) {
		assert.NoError(t, CanChangeStatus(manager, pending, strPtr(StatusDenied)))
	})
}

func TestListScope(t *testing.T) {
	assert.Equal(t, access.ScopeAll, ListScope(testUser("m", user.RoleManager, false)))
	assert.Equal(t, access.ScopeOwn, ListScope(testUser("e", user.RoleEmployee, false)))
	assert.Equal(t, access.ScopeOwn, ListScope(testUser("t", user.RoleTerminal, false)))
}

func TestCanDelete(t *testing.T) {
	assert.ErrorIs(t, CanDelete(), access.ErrDenied)
}
