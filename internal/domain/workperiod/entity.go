package workperiod

import "time"

// WorkPeriod is one clock-in/clock-out span for an employee. A nil
// EndTime means the employee is still clocked in (an open period); at
// most one open period may exist per employee.
type WorkPeriod struct {
	ID         string
	EmployeeID string
	StartTime  time.Time
	EndTime    *time.Time
	Adjustment *int
	Note       *string
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	OwnerUserID  *string
}

// Open reports whether the period is still running.
func (w *WorkPeriod) Open() bool {
	return w.EndTime == nil
}

// Overlaps reports whether [w.StartTime, w.EndTime) intersects
// [start, end). A nil end is treated as extending forever.
func (w *WorkPeriod) Overlaps(start time.Time, end *time.Time) bool {
	if end != nil && !w.StartTime.Before(*end) {
		return false
	}
	if w.EndTime != nil && !start.Before(*w.EndTime) {
		return false
	}
	return true
}
