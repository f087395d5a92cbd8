package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ScriptedSpythoN/demoos/internal/domain/subject"
)

type Service struct {
	subjects subject.SubjectRepository
	logger   *slog.Logger
}

func NewService(subjects subject.SubjectRepository, logger *slog.Logger) *Service {
	return &Service{subjects: subjects, logger: logger}
}

func (s *Service) Create(ctx context.Context, req subject.CreateSubjectRequest) (subject.Subject, error) {
	created, err := s.subjects.Create(ctx, subject.Subject{
		Code:         strings.ToUpper(req.Code),
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
		FacultyID:    req.FacultyID,
	})
	if err != nil {
		return subject.Subject{}, err
	}
	s.logger.Info("subject created",
		slog.String("subject_id", created.ID),
		slog.String("code", created.Code))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (subject.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, departmentID string, semester int) ([]subject.Subject, error) {
	list, err := s.subjects.List(ctx, departmentID, semester)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return list, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}
