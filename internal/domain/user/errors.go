package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user or employee ID already exists")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrHRRoleRequired     = errors.New("admin access required")
	ErrForbidden          = errors.New("not allowed to modify this user")
)
