package classroom

import "errors"

var (
	ErrClassroomNotFound  = errors.New("classroom not found")
	ErrInvalidJoinCode    = errors.New("invalid join code")
	ErrAlreadyMember      = errors.New("already a member of this classroom")
	ErrNotMember          = errors.New("not a member of this classroom")
	ErrNotTeacher         = errors.New("only the classroom teacher may do this")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDeadlinePassed     = errors.New("assignment deadline has passed")
	ErrTestNotFound       = errors.New("test not found")
	ErrTestNotOpen        = errors.New("test is not open")
	ErrAlreadySubmitted   = errors.New("already submitted")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)
