package timeoff

import (
	"time"

	"github.com/stafftrack/timeclock-backend-go/internal/pkg/validator"
)

type CreateDayOffRequest struct {
	EmployeeID string  `json:"employee_id"`
	RequestID  *string `json:"request_id,omitempty"`
	Date       string  `json:"date"`
	Hours      int     `json:"hours"`
	Type       Type    `json:"type"`
	IsPaid     bool    `json:"is_paid"`
	Note       *string `json:"note,omitempty"`
}

func (r CreateDayOffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in the format 2006-01-02"})
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be holiday, vacation or personal"})
	}
	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 1 and 24"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDayOffRequest struct {
	Date   *string `json:"date,omitempty"`
	Hours  *int    `json:"hours,omitempty"`
	Type   *Type   `json:"type,omitempty"`
	IsPaid *bool   `json:"is_paid,omitempty"`
	Note   *string `json:"note,omitempty"`
}

// BatchCreateDaysOffRequest creates one DayOff per date, all inside a
// single transaction, optionally linked to the approved request.
type BatchCreateDaysOffRequest struct {
	EmployeeID string   `json:"employee_id"`
	RequestID  *string  `json:"request_id,omitempty"`
	Dates      []string `json:"dates"`
	Hours      int      `json:"hours"`
	Type       Type     `json:"type"`
	IsPaid     bool     `json:"is_paid"`
	Note       *string  `json:"note,omitempty"`
}

func (r BatchCreateDaysOffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{Field: "dates", Message: "at least one date is required"})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must be in the format 2006-01-02"})
			break
		}
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be holiday, vacation or personal"})
	}
	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 1 and 24"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchDeleteDaysOffRequest removes every DayOff linked to a request.
type BatchDeleteDaysOffRequest struct {
	RequestID string `json:"request_id"`
}

type CreateRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Type       Type    `json:"type"`
	IsPaid     bool    `json:"is_paid"`
	Note       *string `json:"note,omitempty"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in the format 2006-01-02"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in the format 2006-01-02"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date can not be before start_date"})
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be holiday, vacation or personal"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequestRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Type      *Type   `json:"type,omitempty"`
	IsPaid    *bool   `json:"is_paid,omitempty"`
	Status    *string `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
	Seen      *bool   `json:"seen,omitempty"`
}

type DayOffResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	RequestID  *string `json:"request_id,omitempty"`
	Date       string  `json:"date"`
	Hours      int     `json:"hours"`
	Type       Type    `json:"type"`
	IsPaid     bool    `json:"is_paid"`
	Note       *string `json:"note,omitempty"`
}

type RequestResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Type        Type    `json:"type"`
	IsPaid      bool    `json:"is_paid"`
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
	Seen        bool    `json:"seen"`
	RequestedAt string  `json:"requested_at"`
}

func ToDayOffResponse(d DayOff) DayOffResponse {
	return DayOffResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		RequestID:  d.RequestID,
		Date:       d.Date.Format("2006-01-02"),
		Hours:      d.Hours,
		Type:       d.Type,
		IsPaid:     d.IsPaid,
		Note:       d.Note,
	}
}

func ToRequestResponse(r DaysOffRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		StartDate:   r.StartDate.Format("2006-01-02"),
		EndDate:     r.EndDate.Format("2006-01-02"),
		Type:        r.Type,
		IsPaid:      r.IsPaid,
		Status:      r.Status,
		Note:        r.Note,
		Seen:        r.Seen,
		RequestedAt: r.RequestedAt.Format(time.RFC3339),
	}
}
