package student

import "time"

type Student struct {
	ID           string
	UserID       *string
	RollNo       string
	RegdNo       *string
	Name         string
	DepartmentID string
	Semester     int
	CreatedAt    time.Time
}
