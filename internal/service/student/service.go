package student

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
)

type Service struct {
	students student.StudentRepository
	logger   *slog.Logger
}

func NewService(students student.StudentRepository, logger *slog.Logger) *Service {
	return &Service{students: students, logger: logger}
}

// Create registers a student. Roll numbers are stored uppercased so
// lookups from attendance and medical flows stay case-insensitive.
func (s *Service) Create(ctx context.Context, req student.CreateStudentRequest) (student.StudentResponse, error) {
	created, err := s.students.Create(ctx, student.Student{
		UserID:       req.UserID,
		RollNo:       strings.ToUpper(req.RollNo),
		RegdNo:       req.RegdNo,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
	})
	if err != nil {
		return student.StudentResponse{}, err
	}

	s.logger.Info("student registered",
		slog.String("student_id", created.ID),
		slog.String("roll_no", created.RollNo))
	return toResponse(created), nil
}

func (s *Service) GetByRollNo(ctx context.Context, rollNo string) (student.StudentResponse, error) {
	st, err := s.students.GetByRollNo(ctx, strings.ToUpper(rollNo))
	if err != nil {
		return student.StudentResponse{}, err
	}
	return toResponse(st), nil
}

func (s *Service) List(ctx context.Context, departmentID string, semester int) ([]student.StudentResponse, error) {
	list, err := s.students.List(ctx, departmentID, semester)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	out := make([]student.StudentResponse, 0, len(list))
	for _, st := range list {
		out = append(out, toResponse(st))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}

// DepartmentAnalytics returns the HOD dashboard aggregates.
func (s *Service) DepartmentAnalytics(ctx context.Context, departmentID string) (student.DepartmentAnalytics, error) {
	return s.students.DepartmentAnalytics(ctx, departmentID)
}

func toResponse(st student.Student) student.StudentResponse {
	return student.StudentResponse{
		ID:           st.ID,
		RollNo:       st.RollNo,
		RegdNo:       st.RegdNo,
		Name:         st.Name,
		DepartmentID: st.DepartmentID,
		Semester:     st.Semester,
	}
}
