package user

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	seq   int
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("u-%d", f.seq)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	var result []user.User
	for _, u := range f.users {
		if filter.Email != nil && u.Email != *filter.Email {
			continue
		}
		result = append(result, u)
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return user.User{}, user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, userID, token string) error {
	if _, ok := f.users[userID]; !ok {
		return user.ErrUserNotFound
	}
	return nil
}

func (f *fakeUserRepo) ConsumeResetToken(ctx context.Context, token, passwordHash string) error {
	return user.ErrInvalidResetToken
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

func TestCreateIssuesTemporaryPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(nil, repo)
	manager := testUser("m", user.RoleManager, false)

	created, err := svc.Create(ctx, manager, user.CreateUserRequest{
		Email:    "pat@example.com",
		Username: "pjones",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), created.TemporaryPassword)

	stored := repo.users[created.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte(created.TemporaryPassword)))
}

func TestCreateRequiresManager(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeUserRepo())

	_, err := svc.Create(ctx, testUser("e", user.RoleEmployee, false), user.CreateUserRequest{
		Email:    "pat@example.com",
		Username: "pjones",
	})
	assert.ErrorIs(t, err, access.ErrDenied)
}

func TestCreateValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeUserRepo())
	manager := testUser("m", user.RoleManager, false)

	_, err := svc.Create(ctx, manager, user.CreateUserRequest{Email: "not-an-email"})
	assert.Error(t, err)
}

func TestGetScopedToSelf(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(nil, repo)
	manager := testUser("m", user.RoleManager, false)

	created, err := svc.Create(ctx, manager, user.CreateUserRequest{
		Email:    "pat@example.com",
		Username: "pjones",
	})
	require.NoError(t, err)

	// A regular user cannot read someone else's account; the record is
	// reported missing rather than forbidden.
	_, err = svc.Get(ctx, testUser("someone-else", user.RoleEmployee, false), created.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	self := testUser(created.ID, user.RoleEmployee, false)
	got, err := svc.Get(ctx, self, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pjones", got.Username)
}

func TestUpdateMatrix(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(nil, repo)
	manager := testUser("m", user.RoleManager, false)

	created, err := svc.Create(ctx, manager, user.CreateUserRequest{
		Email:    "pat@example.com",
		Username: "pjones",
	})
	require.NoError(t, err)

	newUsername := "pjones2"
	updated, err := svc.Update(ctx, manager, created.ID, user.UpdateUserRequest{Username: &newUsername})
	require.NoError(t, err)
	assert.Equal(t, "pjones2", updated.Username)

	_, err = svc.Update(ctx, testUser("stranger", user.RoleEmployee, false), created.ID, user.UpdateUserRequest{Username: &newUsername})
	assert.ErrorIs(t, err, access.ErrDenied)
}

func TestDeleteAlwaysDenied(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeUserRepo())
	assert.ErrorIs(t, svc.Delete(ctx, testUser("ga", user.RoleAdmin, true), "u-1"), access.ErrDenied)
}
