package employee

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
func boolPtr(b bool) *bool    { return &b }

func TestCanUpdateProtectedFields(t *testing.T) {
	manager := testUser("m", user.RoleManager, false)
	regular := testUser("e", user.RoleEmployee, false)

	ssn := "123-45-6789"
	existing := Employee{
		ID:        "emp1",
		UserID:    "e",
		FirstName: "Pat",
		LastName:  "Jones",
		SSN:       &ssn,
		IsActive:  true,
	}

	tests := []struct {
		name    string
		actor   *user.User
		req     UpdateEmployeeRequest
		allowed bool
	}{
		{
			name:    "manager changes last name",
			actor:   manager,
			req:     UpdateEmployeeRequest{LastName: strPtr("Smith")},
			allowed: true,
		},
		{
			name:    "manager deactivates",
			actor:   manager,
			req:     UpdateEmployeeRequest{IsActive: boolPtr(false)},
			allowed: true,
		},
		{
			name:    "employee changes first name",
			actor:   regular,
			req:     UpdateEmployeeRequest{FirstName: strPtr("Patricia")},
			allowed: false,
		},
		{
			name:    "employee changes last name",
			actor:   regular,
			req:     UpdateEmployeeRequest{LastName: strPtr("Smith")},
			allowed: false,
		},
		{
			name:    "employee changes ssn",
			actor:   regular,
			req:     UpdateEmployeeRequest{SSN: strPtr("987-65-4321")},
			allowed: false,
		},
		{
			name:    "employee changes is_active",
			actor:   regular,
			req:     UpdateEmployeeRequest{IsActive: boolPtr(false)},
			allowed: false,
		},
		{
			name:    "employee echoes protected fields unchanged",
			actor:   regular,
			req:     UpdateEmployeeRequest{FirstName: strPtr("Pat"), LastName: strPtr("Jones"), IsActive: boolPtr(true)},
			allowed: true,
		},
		{
			name:    "employee updates phone",
			actor:   regular,
			req:     UpdateEmployeeRequest{PrimaryPhone: strPtr("(555)123-4567")},
			allowed: true,
		},
		{
			name:    "employee updates address",
			actor:   regular,
			req:     UpdateEmployeeRequest{AddressStreet: strPtr("12 Oak St"), City: strPtr("Springfield")},
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanUpdate(tt.actor, existing, tt.req)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, access.ErrDenied)
			}
		})
	}
}

func TestCanCreate(t *testing.T) {
	assert.NoError(t, CanCreate(testUser("m", user.RoleManager, false)))
	assert.ErrorIs(t, CanCreate(testUser("e", user.RoleEmployee, false)), access.ErrDenied)
	assert.ErrorIs(t, CanCreate(testUser("t", user.RoleTerminal, false)), access.ErrDenied)
}

func TestListScope(t *testing.T) {
	assert.Equal(t, access.ScopeAll, ListScope(testUser("m", user.RoleManager, false)))
	assert.Equal(t, access.ScopeAll, ListScope(testUser("t", user.RoleTerminal, false)))
	assert.Equal(t, access.ScopeOwn, ListScope(testUser("e", user.RoleEmployee, false)))
}

func TestCanDelete(t *testing.T) {
	assert.ErrorIs(t, CanDelete(), access.ErrDenied)
}
