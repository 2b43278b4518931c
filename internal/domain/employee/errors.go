package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrEmailExists      = errors.New("Email already registered")
	ErrProtectedAccount = errors.New("Cannot deactivate admin accounts")
	ErrSelfDeactivation = errors.New("Cannot deactivate yourself")
	ErrAccessDenied     = errors.New("Access denied")
)
