package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSSNExists        = errors.New("an employee with this SSN already exists")
	ErrUserHasEmployee  = errors.New("user already has an employee record")
)
