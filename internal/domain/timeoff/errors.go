package timeoff

import "errors"

var (
	ErrDayOffNotFound  = errors.New("day off not found")
	ErrRequestNotFound = errors.New("days off request not found")
	ErrInvalidType     = errors.New("invalid day off type")
	ErrInvalidDates    = errors.New("end_date can not be before start_date")
	ErrNoDates         = errors.New("at least one date is required")
)
