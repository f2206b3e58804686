package workperiod

import "time"

type CreateWorkPeriodRequest struct {
	EmployeeID string     `json:"employee_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Adjustment *int       `json:"adjustment,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

// UpdateWorkPeriodRequest uses pointers so the guard can tell an omitted
// field from an explicit value. StartTime may be echoed back unchanged
// but never altered.
type UpdateWorkPeriodRequest struct {
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Adjustment *int       `json:"adjustment,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

type WorkPeriodResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Adjustment   *int       `json:"adjustment,omitempty"`
	Note         *string    `json:"note,omitempty"`
}

func ToResponse(w WorkPeriod) WorkPeriodResponse {
	return WorkPeriodResponse{
		ID:           w.ID,
		EmployeeID:   w.EmployeeID,
		EmployeeName: w.EmployeeName,
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
		Adjustment:   w.Adjustment,
		Note:         w.Note,
	}
}
