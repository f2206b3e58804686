package user

import (
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	Role          Role    `json:"role"`
	IsGlobalAdmin bool    `json:"is_global_admin"`
	EmployeeID    *string `json:"employee_id,omitempty"`
}

// CreateUserResponse carries the generated temporary password exactly
// once, at provisioning time.
type CreateUserResponse struct {
	UserResponse
	TemporaryPassword string `json:"temporary_password"`
}

type PrivilegesResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Role          Role   `json:"role"`
	IsGlobalAdmin bool   `json:"is_global_admin"`
}

func ToPrivilegesResponse(p Privileges) PrivilegesResponse {
	return PrivilegesResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Role:          p.Role,
		IsGlobalAdmin: p.IsGlobalAdmin,
	}
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Username:      u.Username,
		Role:          u.Role(),
		IsGlobalAdmin: u.IsGlobalAdmin(),
		EmployeeID:    u.EmployeeID,
	}
}
