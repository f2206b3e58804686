package privilege

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/privilege"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

type fakePrivilegeRepo struct {
	seq     int
	records map[string]user.Privileges
}

func newFakePrivilegeRepo() *fakePrivilegeRepo {
	return &fakePrivilegeRepo{records: make(map[string]user.Privileges)}
}

func (f *fakePrivilegeRepo) Create(ctx context.Context, p user.Privileges) (user.Privileges, error) {
	for _, existing := range f.records {
		if existing.UserID == p.UserID {
			return user.Privileges{}, user.ErrPrivilegesExist
		}
	}
	f.seq++
	p.ID = fmt.Sprintf("p-%d", f.seq)
	f.records[p.ID] = p
	return p, nil
}

func (f *fakePrivilegeRepo) GetByID(ctx context.Context, id string) (user.Privileges, error) {
	p, ok := f.records[id]
	if !ok {
		return user.Privileges{}, user.ErrPrivilegesNotFound
	}
	return p, nil
}

func (f *fakePrivilegeRepo) GetByUserID(ctx context.Context, userID string) (user.Privileges, error) {
	for _, p := range f.records {
		if p.UserID == userID {
			return p, nil
		}
	}
	return user.Privileges{}, user.ErrPrivilegesNotFound
}

func (f *fakePrivilegeRepo) List(ctx context.Context, filter privilege.Filter) ([]user.Privileges, int64, error) {
	var result []user.Privileges
	for _, p := range f.records {
		if filter.UserID != nil && p.UserID != *filter.UserID {
			continue
		}
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (f *fakePrivilegeRepo) Update(ctx context.Context, p user.Privileges) (user.Privileges, error) {
	if _, ok := f.records[p.ID]; !ok {
		return user.Privileges{}, user.ErrPrivilegesNotFound
	}
	f.records[p.ID] = p
	return p, nil
}

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

func TestCreateRequiresManagerTier(t *testing.T) {
	ctx := context.Background()
	svc := NewPrivilegeService(nil, newFakePrivilegeRepo())

	_, err := svc.Create(ctx, testUser("e", user.RoleEmployee, false), privilege.WriteRequest{
		UserID: "u1",
		Role:   rolePtr(user.RoleEmployee),
	})
	assert.ErrorIs(t, err, access.ErrDenied)

	created, err := svc.Create(ctx, testUser("m", user.RoleManager, false), privilege.WriteRequest{
		UserID: "u1",
		Role:   rolePtr(user.RoleEmployee),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, user.RoleEmployee, created.Role)
}

func TestGetScopedToOwnRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakePrivilegeRepo()
	svc := NewPrivilegeService(nil, repo)
	manager := testUser("m", user.RoleManager, false)

	created, err := svc.Create(ctx, manager, privilege.WriteRequest{
		UserID: "u1",
		Role:   rolePtr(user.RoleEmployee),
	})
	require.NoError(t, err)

	// A stranger's record reads as missing, not forbidden.
	_, err = svc.Get(ctx, testUser("u2", user.RoleEmployee, false), created.ID)
	assert.ErrorIs(t, err, user.ErrPrivilegesNotFound)

	got, err := svc.Get(ctx, testUser("u1", user.RoleEmployee, false), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestResponseFieldNames(t *testing.T) {
	ctx := context.Background()
	svc := NewPrivilegeService(nil, newFakePrivilegeRepo())

	created, err := svc.Create(ctx, testUser("m", user.RoleAdmin, false), privilege.WriteRequest{
		UserID: "u1",
		Role:   rolePtr(user.RoleManager),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(created)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "user_id")
	assert.Contains(t, fields, "is_global_admin")
	assert.Equal(t, "manager", fields["role"])
}

func TestDeleteAlwaysDenied(t *testing.T) {
	ctx := context.Background()
	svc := NewPrivilegeService(nil, newFakePrivilegeRepo())
	assert.ErrorIs(t, svc.Delete(ctx, testUser("ga", user.RoleAdmin, true), "p-1"), access.ErrDenied)
}
