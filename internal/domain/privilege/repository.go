package privilege

import (
	"context"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, p user.Privileges) (user.Privileges, error)
	GetByID(ctx context.Context, id string) (user.Privileges, error)
	GetByUserID(ctx context.Context, userID string) (user.Privileges, error)
	List(ctx context.Context, filter Filter) ([]user.Privileges, int64, error)
	Update(ctx context.Context, p user.Privileges) (user.Privileges, error)
}

type Filter struct {
	UserID *string
	Role   *user.Role
	Page   int
	Limit  int
}
