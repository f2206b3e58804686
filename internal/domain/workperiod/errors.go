package workperiod

import "errors"

// Business-rule rejections. These map to 400 responses carrying the
// message, unlike authorization denials which map to 403.
var (
	ErrStartTimeRequired  = errors.New("start_time is required")
	ErrOverlapsPrevious   = errors.New("this work period overlaps with the previous one")
	ErrOverlapsNext       = errors.New("this work period overlaps with the next one")
	ErrEndBeforeStart     = errors.New("end time can not be before start time")
	ErrStartTimeImmutable = errors.New("cannot change start_time for this work period")
	ErrAlreadyClockedOut  = errors.New("employee is already clocked out for this work period")
	ErrClockOutOutOfRange = errors.New("clock out can not be out of range")

	ErrWorkPeriodNotFound = errors.New("work period not found")
	ErrNoWorkPeriods      = errors.New("no work periods found for employee")
)
