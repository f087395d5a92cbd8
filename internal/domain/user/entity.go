package user

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleHOD     Role = "HOD"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleHOD:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	FullName     string
	Email        *string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
