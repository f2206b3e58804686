package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/application"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/auth"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/settings"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/timeoff"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/workperiod"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Authorization
// denials become 403 with the denial reason; business-rule rejections
// become 400 carrying the rule's message.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	if errors.Is(err, access.ErrDenied) {
		Forbidden(w, err.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrPrivilegesNotFound):
		NotFound(w, "Privileges record not found")
	case errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, user.ErrUsernameExists),
		errors.Is(err, user.ErrPrivilegesExist):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrInvalidResetToken):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSSNExists),
		errors.Is(err, employee.ErrUserHasEmployee):
		Conflict(w, err.Error())

	// Work period business rules
	case errors.Is(err, workperiod.ErrWorkPeriodNotFound):
		NotFound(w, "Work period not found")
	case errors.Is(err, workperiod.ErrNoWorkPeriods):
		NotFound(w, err.Error())
	case errors.Is(err, workperiod.ErrStartTimeRequired),
		errors.Is(err, workperiod.ErrOverlapsPrevious),
		errors.Is(err, workperiod.ErrOverlapsNext),
		errors.Is(err, workperiod.ErrEndBeforeStart),
		errors.Is(err, workperiod.ErrStartTimeImmutable),
		errors.Is(err, workperiod.ErrAlreadyClockedOut),
		errors.Is(err, workperiod.ErrClockOutOutOfRange):
		BadRequest(w, err.Error(), nil)

	// Time off domain errors
	case errors.Is(err, timeoff.ErrDayOffNotFound):
		NotFound(w, "Day off not found")
	case errors.Is(err, timeoff.ErrRequestNotFound):
		NotFound(w, "Days off request not found")
	case errors.Is(err, timeoff.ErrInvalidType),
		errors.Is(err, timeoff.ErrInvalidDates),
		errors.Is(err, timeoff.ErrNoDates):
		BadRequest(w, err.Error(), nil)

	// Read-only and preference records
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "User settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
