package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns every user; the service applies ListScope before
	// choosing between List and GetByID.
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)

	Update(ctx context.Context, u User) (User, error)

	// SetResetToken stores a single-use password-reset token for the
	// account. ConsumeResetToken swaps the password hash for a
	// still-valid token and invalidates the token in the same
	// statement; an unknown or expired token yields
	// ErrInvalidResetToken.
	SetResetToken(ctx context.Context, userID, token string) error
	ConsumeResetToken(ctx context.Context, token, passwordHash string) error
}

type UserFilter struct {
	Email    *string
	Username *string
	Page     int
	Limit    int
}
