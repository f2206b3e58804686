package employee

import (
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID           string  `json:"user_id"`
	PayrollID        *string `json:"payroll_id,omitempty"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	SSN              *string `json:"ssn,omitempty"`
	PrimaryPhone     string  `json:"primary_phone"`
	SecondaryPhone   *string `json:"secondary_phone,omitempty"`
	AddressStreet    string  `json:"address_street"`
	AddressSecondary *string `json:"address_secondary,omitempty"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PostalCode       string  `json:"postal_code"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if r.SSN != nil && !validator.IsValidSSN(*r.SSN) {
		errs = append(errs, validator.ValidationError{Field: "ssn", Message: "please enter an SSN in the format `999-99-9999`"})
	}
	if !validator.IsValidPhone(r.PrimaryPhone) {
		errs = append(errs, validator.ValidationError{Field: "primary_phone", Message: "please enter a phone in the format `(999)999-9999`"})
	}
	if r.SecondaryPhone != nil && !validator.IsValidPhone(*r.SecondaryPhone) {
		errs = append(errs, validator.ValidationError{Field: "secondary_phone", Message: "please enter a phone in the format `(999)999-9999`"})
	}
	if !validator.IsValidState(r.State) {
		errs = append(errs, validator.ValidationError{Field: "state", Message: "please enter a two-letter state code"})
	}
	if !validator.IsValidZip(r.PostalCode) {
		errs = append(errs, validator.ValidationError{Field: "postal_code", Message: "please enter a ZIP code in the format `99999` or `99999-9999`"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest uses pointers throughout so the policy can tell
// "field omitted" apart from "field set to a new value".
type UpdateEmployeeRequest struct {
	PayrollID        *string `json:"payroll_id,omitempty"`
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	SSN              *string `json:"ssn,omitempty"`
	PrimaryPhone     *string `json:"primary_phone,omitempty"`
	SecondaryPhone   *string `json:"secondary_phone,omitempty"`
	AddressStreet    *string `json:"address_street,omitempty"`
	AddressSecondary *string `json:"address_secondary,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	PostalCode       *string `json:"postal_code,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.SSN != nil && !validator.IsValidSSN(*r.SSN) {
		errs = append(errs, validator.ValidationError{Field: "ssn", Message: "please enter an SSN in the format `999-99-9999`"})
	}
	if r.PrimaryPhone != nil && !validator.IsValidPhone(*r.PrimaryPhone) {
		errs = append(errs, validator.ValidationError{Field: "primary_phone", Message: "please enter a phone in the format `(999)999-9999`"})
	}
	if r.State != nil && !validator.IsValidState(*r.State) {
		errs = append(errs, validator.ValidationError{Field: "state", Message: "please enter a two-letter state code"})
	}
	if r.PostalCode != nil && !validator.IsValidZip(*r.PostalCode) {
		errs = append(errs, validator.ValidationError{Field: "postal_code", Message: "please enter a ZIP code in the format `99999` or `99999-9999`"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	PayrollID        *string `json:"payroll_id,omitempty"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	SSN              *string `json:"ssn,omitempty"`
	PrimaryPhone     string  `json:"primary_phone"`
	SecondaryPhone   *string `json:"secondary_phone,omitempty"`
	AddressStreet    string  `json:"address_street"`
	AddressSecondary *string `json:"address_secondary,omitempty"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PostalCode       string  `json:"postal_code"`
	IsActive         bool    `json:"is_active"`
}

// TerminalEmployeeResponse is the reduced view a timeclock kiosk gets:
// enough to pick a name off a list, nothing sensitive.
type TerminalEmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		PayrollID:        e.PayrollID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		SSN:              e.SSN,
		PrimaryPhone:     e.PrimaryPhone,
		SecondaryPhone:   e.SecondaryPhone,
		AddressStreet:    e.AddressStreet,
		AddressSecondary: e.AddressSecondary,
		City:             e.City,
		State:            e.State,
		PostalCode:       e.PostalCode,
		IsActive:         e.IsActive,
	}
}

func ToTerminalResponse(e Employee) TerminalEmployeeResponse {
	return TerminalEmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
	}
}
