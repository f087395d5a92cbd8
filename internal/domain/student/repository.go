package student

import "context"

type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)
	GetByRollNo(ctx context.Context, rollNo string) (Student, error)
	List(ctx context.Context, departmentID string, semester int) ([]Student, error)
	Delete(ctx context.Context, id string) error
	DepartmentAnalytics(ctx context.Context, departmentID string) (DepartmentAnalytics, error)
}
