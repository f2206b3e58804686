package workperiod

import "time"

// ValidateCreate checks a new work period against its temporal
// neighbours for the same employee. previous is the most recent period
// starting before the new start, next the earliest period starting after
// it; either may be nil when no such period exists, which is expected
// absence rather than an error.
func ValidateCreate(req CreateWorkPeriodRequest, previous, next *WorkPeriod) error {
	if req.StartTime == nil {
		return ErrStartTimeRequired
	}
	start := *req.StartTime

	if previous != nil {
		// An open previous period runs until further notice, so any
		// later start collides with it. This is what rejects a second
		// clock-in while still clocked in.
		if previous.Open() || previous.EndTime.After(start) {
			return ErrOverlapsPrevious
		}
	}

	if req.EndTime != nil {
		if !req.EndTime.After(start) {
			return ErrEndBeforeStart
		}
		if next != nil && next.StartTime.Before(*req.EndTime) {
			return ErrOverlapsNext
		}
	}

	return nil
}

// ValidateUpdate checks an edit to an existing work period. start_time
// is immutable once recorded; a clock-out must land inside
// (start, now] and a closed period cannot be closed again with a
// different end.
func ValidateUpdate(existing WorkPeriod, req UpdateWorkPeriodRequest, now time.Time) error {
	if req.StartTime != nil && !req.StartTime.Equal(existing.StartTime) {
		return ErrStartTimeImmutable
	}

	if req.EndTime != nil {
		if existing.EndTime != nil {
			if !existing.EndTime.Equal(*req.EndTime) {
				return ErrAlreadyClockedOut
			}
			return nil
		}
		end := *req.EndTime
		if !end.After(existing.StartTime) || end.After(now) {
			return ErrClockOutOutOfRange
		}
	}

	return nil
}

// TruncateClock normalizes a wall-clock reading for storage: clock-in
// and clock-out stamps are recorded to the whole minute.
func TruncateClock(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
