package subject

import "time"

type Subject struct {
	ID           string
	Code         string
	Name         string
	DepartmentID string
	Semester     int
	FacultyID    string
	CreatedAt    time.Time
}

type CreateSubjectRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Semester     int    `json:"semester"`
	FacultyID    string `json:"faculty_id"`
}
