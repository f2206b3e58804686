package timeoff

import "time"

// Type classifies a day off.
type Type string

const (
	TypeHoliday  Type = "holiday"
	TypeVacation Type = "vacation"
	TypePersonal Type = "personal"
)

func (t Type) Valid() bool {
	switch t {
	case TypeHoliday, TypeVacation, TypePersonal:
		return true
	}
	return false
}

// Request statuses. Status starts Pending and may only be moved by a
// manager.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDenied   = "Denied"
)

// DayOff is a single granted day, created individually by a manager or
// in batch from an approved request.
type DayOff struct {
	ID         string
	EmployeeID string
	RequestID  *string
	Date       time.Time
	Hours      int
	Type       Type
	IsPaid     bool
	Note       *string
	EnteredBy  string
	EnteredAt  time.Time
	UpdatedBy  string
	UpdatedAt  time.Time

	// DTO / Join
	OwnerUserID *string
}

// DaysOffRequest is an employee's ask for a span of time off.
type DaysOffRequest struct {
	ID          string
	EmployeeID  string
	StartDate   time.Time
	EndDate     time.Time
	Type        Type
	IsPaid      bool
	Status      string
	Note        *string
	Seen        bool
	SeenAt      *time.Time
	RequestedAt time.Time
	UpdatedBy   string
	UpdatedAt   time.Time

	// DTO / Join
	OwnerUserID *string
}
