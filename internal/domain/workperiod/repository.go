package workperiod

import (
	"context"
	"time"
)

// Repository persists work periods. Implementations must serialize
// writes per employee (see LockEmployee) so that concurrent clock-ins or
// clock-outs for the same employee cannot both pass the guard.
type Repository interface {
	Create(ctx context.Context, w WorkPeriod) (WorkPeriod, error)
	GetByID(ctx context.Context, id string) (WorkPeriod, error)
	List(ctx context.Context, filter Filter) ([]WorkPeriod, int64, error)
	Update(ctx context.Context, w WorkPeriod) (WorkPeriod, error)

	// GetPrevious returns the most recent period for the employee with
	// start_time before t, or nil when none exists.
	GetPrevious(ctx context.Context, employeeID string, t time.Time) (*WorkPeriod, error)

	// GetNext returns the earliest period for the employee with
	// start_time after t, or nil when none exists.
	GetNext(ctx context.Context, employeeID string, t time.Time) (*WorkPeriod, error)

	// GetLatest returns the period with the greatest start_time for the
	// employee; ErrNoWorkPeriods when the employee has none.
	GetLatest(ctx context.Context, employeeID string) (WorkPeriod, error)

	// ListLatest returns each employee's latest period. Employees
	// without any period are omitted. An empty ownerUserID means no
	// ownership restriction.
	ListLatest(ctx context.Context, ownerUserID string) ([]WorkPeriod, error)

	// LockEmployee takes the per-employee write lock for the duration
	// of the surrounding transaction.
	LockEmployee(ctx context.Context, employeeID string) error
}

type Filter struct {
	EmployeeID  *string
	OwnerUserID *string
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}
