package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/auth"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/password"
)

type fakeUserRepo struct {
	users  map[string]user.User
	tokens map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]user.User),
		tokens: make(map[string]string),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
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
	f.tokens[token] = userID
	return nil
}

func (f *fakeUserRepo) ConsumeResetToken(ctx context.Context, token, passwordHash string) error {
	userID, ok := f.tokens[token]
	if !ok {
		return user.ErrInvalidResetToken
	}
	u := f.users[userID]
	u.PasswordHash = &passwordHash
	f.users[userID] = u
	delete(f.tokens, token)
	return nil
}

func TestForgotPasswordIssuesToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	repo.users["u1"] = user.User{ID: "u1", Email: "pat@example.com", Username: "pjones"}
	svc := NewAuthService(nil, repo, nil, nil)

	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "pat@example.com"}))
	assert.Len(t, repo.tokens, 1)
	for token := range repo.tokens {
		assert.NotEmpty(t, token)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(nil, repo, nil, nil)

	// No account enumeration: unknown addresses get the same outcome.
	assert.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "nobody@example.com"}))
	assert.Empty(t, repo.tokens)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	repo.users["u1"] = user.User{ID: "u1", Email: "pat@example.com", Username: "pjones"}
	svc := NewAuthService(nil, repo, nil, nil)

	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "pat@example.com"}))
	var token string
	for tok := range repo.tokens {
		token = tok
	}

	require.NoError(t, svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, NewPassword: "hunter2hunter2"}))

	stored := repo.users["u1"]
	require.NotNil(t, stored.PasswordHash)
	assert.True(t, password.Compare(*stored.PasswordHash, "hunter2hunter2"))

	// Tokens are single-use.
	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, NewPassword: "hunter2hunter2"})
	assert.ErrorIs(t, err, user.ErrInvalidResetToken)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(nil, newFakeUserRepo(), nil, nil)

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: "bogus", NewPassword: "hunter2hunter2"})
	assert.ErrorIs(t, err, user.ErrInvalidResetToken)
}

func TestResetPasswordValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(nil, newFakeUserRepo(), nil, nil)

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: "t", NewPassword: "short"})
	assert.Error(t, err)
}
