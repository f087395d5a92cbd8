package medical

import "errors"

var (
	ErrRequestNotFound = errors.New("medical request not found")
	ErrInvalidAction   = errors.New("review action must be APPROVED or REJECTED")
	ErrInvalidInterval = errors.New("leave interval end before start")
)
