package student

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrRollNoExists    = errors.New("roll number already registered")
)
