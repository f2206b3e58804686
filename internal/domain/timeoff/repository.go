package timeoff

import (
	"context"
	"time"
)

type DayOffRepository interface {
	Create(ctx context.Context, d DayOff) (DayOff, error)
	GetByID(ctx context.Context, id string) (DayOff, error)
	List(ctx context.Context, filter DayOffFilter) ([]DayOff, int64, error)
	Update(ctx context.Context, d DayOff) (DayOff, error)

	// DeleteByRequestID removes every day off created from the given
	// request; used only by the manager-gated batch delete.
	DeleteByRequestID(ctx context.Context, requestID string) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r DaysOffRequest) (DaysOffRequest, error)
	GetByID(ctx context.Context, id string) (DaysOffRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]DaysOffRequest, int64, error)
	Update(ctx context.Context, r DaysOffRequest) (DaysOffRequest, error)
}

type DayOffFilter struct {
	EmployeeID  *string
	OwnerUserID *string
	RequestID   *string
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}

type RequestFilter struct {
	EmployeeID  *string
	OwnerUserID *string
	Status      *string
	Seen        *bool
	Page        int
	Limit       int
}
