package subject

import "errors"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrCodeExists      = errors.New("subject code already exists")
)
