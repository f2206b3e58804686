package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserEmailExists    = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrPrivilegesNotFound = errors.New("privileges record not found")
	ErrPrivilegesExist    = errors.New("user already has a privileges record")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
