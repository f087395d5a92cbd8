package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrHODAccessRequired  = errors.New("hod access required")
	ErrStaffAccessRequired = errors.New("teacher or hod access required")
)
