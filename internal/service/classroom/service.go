package classroom

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
)

// joinCodeAlphabet avoids easily-confused characters like 0/O and 1/I.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const joinCodeLength = 6

// Service owns virtual classrooms and their content: notes, assignments
// with submissions, and timed MCQ tests with auto-grading.
type Service struct {
	classrooms classroom.ClassroomRepository
	content    classroom.ContentRepository
	tests      classroom.TestRepository
	logger     *slog.Logger
}

func NewService(classrooms classroom.ClassroomRepository, content classroom.ContentRepository, tests classroom.TestRepository, logger *slog.Logger) *Service {
	return &Service{classrooms: classrooms, content: content, tests: tests, logger: logger}
}

func generateJoinCode() (string, error) {
	b := make([]byte, joinCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate join code: %w", err)
	}
	for i := range b {
		b[i] = joinCodeAlphabet[int(b[i])%len(joinCodeAlphabet)]
	}
	return string(b), nil
}

func (s *Service) Create(ctx context.Context, teacherID string, req classroom.CreateClassroomRequest) (classroom.ClassroomResponse, error) {
	code, err := generateJoinCode()
	if err != nil {
		return classroom.ClassroomResponse{}, err
	}
	created, err := s.classrooms.Create(ctx, classroom.Classroom{
		Name:      req.Name,
		TeacherID: teacherID,
		JoinCode:  code,
	})
	if err != nil {
		return classroom.ClassroomResponse{}, fmt.Errorf("create classroom: %w", err)
	}
	s.logger.Info("classroom created",
		slog.String("classroom_id", created.ID),
		slog.String("teacher_id", teacherID))
	return toResponse(created), nil
}

// Join enrolls a student via join code.
func (s *Service) Join(ctx context.Context, studentID string, req classroom.JoinRequest) (classroom.ClassroomResponse, error) {
	c, err := s.classrooms.GetByJoinCode(ctx, req.JoinCode)
	if err != nil {
		return classroom.ClassroomResponse{}, err
	}
	if err := s.classrooms.AddMember(ctx, classroom.Member{ClassroomID: c.ID, StudentID: studentID}); err != nil {
		return classroom.ClassroomResponse{}, err
	}
	return toResponse(c), nil
}

func (s *Service) ListForStudent(ctx context.Context, studentID string) ([]classroom.ClassroomResponse, error) {
	list, err := s.classrooms.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return toResponses(list), nil
}

func (s *Service) ListForTeacher(ctx context.Context, teacherID string) ([]classroom.ClassroomResponse, error) {
	list, err := s.classrooms.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return toResponses(list), nil
}

// requireTeacher loads the classroom and checks ownership.
func (s *Service) requireTeacher(ctx context.Context, classroomID, teacherID string) (classroom.Classroom, error) {
	c, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return classroom.Classroom{}, err
	}
	if c.TeacherID != teacherID {
		return classroom.Classroom{}, classroom.ErrNotTeacher
	}
	return c, nil
}

// requireMember checks classroom membership for a student.
func (s *Service) requireMember(ctx context.Context, classroomID, studentID string) error {
	ok, err := s.classrooms.IsMember(ctx, classroomID, studentID)
	if err != nil {
		return err
	}
	if !ok {
		return classroom.ErrNotMember
	}
	return nil
}

// requireAccess admits the owning teacher or an enrolled student.
func (s *Service) requireAccess(ctx context.Context, classroomID, userID string) error {
	c, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}
	if c.TeacherID == userID {
		return nil
	}
	return s.requireMember(ctx, classroomID, userID)
}

func (s *Service) CreateNote(ctx context.Context, teacherID, classroomID, title, fileURL string) (classroom.Note, error) {
	if _, err := s.requireTeacher(ctx, classroomID, teacherID); err != nil {
		return classroom.Note{}, err
	}
	return s.content.CreateNote(ctx, classroom.Note{ClassroomID: classroomID, Title: title, FileURL: fileURL})
}

func (s *Service) ListNotes(ctx context.Context, userID, classroomID string) ([]classroom.Note, error) {
	if err := s.requireAccess(ctx, classroomID, userID); err != nil {
		return nil, err
	}
	return s.content.ListNotes(ctx, classroomID)
}

func (s *Service) CreateAssignment(ctx context.Context, teacherID, classroomID, title, fileURL string, deadline time.Time) (classroom.Assignment, error) {
	if _, err := s.requireTeacher(ctx, classroomID, teacherID); err != nil {
		return classroom.Assignment{}, err
	}
	return s.content.CreateAssignment(ctx, classroom.Assignment{
		ClassroomID: classroomID,
		Title:       title,
		FileURL:     fileURL,
		Deadline:    deadline,
	})
}

func (s *Service) ListAssignments(ctx context.Context, userID, classroomID string) ([]classroom.Assignment, error) {
	if err := s.requireAccess(ctx, classroomID, userID); err != nil {
		return nil, err
	}
	return s.content.ListAssignments(ctx, classroomID)
}

// SubmitAssignment records a student's upload. Late submissions are
// rejected outright.
func (s *Service) SubmitAssignment(ctx context.Context, studentID, assignmentID, fileURL string) (classroom.AssignmentSubmission, error) {
	a, err := s.content.GetAssignment(ctx, assignmentID)
	if err != nil {
		return classroom.AssignmentSubmission{}, err
	}
	if err := s.requireMember(ctx, a.ClassroomID, studentID); err != nil {
		return classroom.AssignmentSubmission{}, err
	}
	if time.Now().After(a.Deadline) {
		return classroom.AssignmentSubmission{}, classroom.ErrDeadlinePassed
	}
	return s.content.CreateSubmission(ctx, classroom.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      fileURL,
	})
}

func (s *Service) ListSubmissions(ctx context.Context, teacherID, assignmentID string) ([]classroom.AssignmentSubmission, error) {
	a, err := s.content.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireTeacher(ctx, a.ClassroomID, teacherID); err != nil {
		return nil, err
	}
	return s.content.ListSubmissions(ctx, assignmentID)
}

func (s *Service) CreateTest(ctx context.Context, teacherID, classroomID string, req classroom.CreateTestRequest) (classroom.Test, error) {
	if _, err := s.requireTeacher(ctx, classroomID, teacherID); err != nil {
		return classroom.Test{}, err
	}
	questions := make([]classroom.TestQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, classroom.TestQuestion{
			QuestionText:       q.QuestionText,
			Options:            classroom.Options(q.Options),
			CorrectOptionIndex: q.CorrectOptionIndex,
		})
	}
	return s.tests.CreateTest(ctx, classroom.Test{
		ClassroomID: classroomID,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, questions)
}

func (s *Service) ListTests(ctx context.Context, userID, classroomID string) ([]classroom.Test, error) {
	if err := s.requireAccess(ctx, classroomID, userID); err != nil {
		return nil, err
	}
	return s.tests.ListTests(ctx, classroomID)
}

// TestQuestions returns the questions for a student sitting the test,
// with correct answers withheld. Only available inside the test window.
func (s *Service) TestQuestions(ctx context.Context, studentID, testID string) ([]classroom.QuestionView, error) {
	t, err := s.tests.GetTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, t.ClassroomID, studentID); err != nil {
		return nil, err
	}
	now := time.Now()
	if now.Before(t.StartTime) || now.After(t.EndTime) {
		return nil, classroom.ErrTestNotOpen
	}

	questions, err := s.tests.ListQuestions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	views := make([]classroom.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, classroom.QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
		})
	}
	return views, nil
}

// SubmitTest grades the student's answers against the stored correct
// indexes. One submission per student; repeats are rejected.
func (s *Service) SubmitTest(ctx context.Context, studentID string, req classroom.SubmitTestRequest) (classroom.TestResult, error) {
	t, err := s.tests.GetTest(ctx, req.TestID)
	if err != nil {
		return classroom.TestResult{}, err
	}
	if err := s.requireMember(ctx, t.ClassroomID, studentID); err != nil {
		return classroom.TestResult{}, err
	}
	now := time.Now()
	if now.Before(t.StartTime) || now.After(t.EndTime) {
		return classroom.TestResult{}, classroom.ErrTestNotOpen
	}
	if _, err := s.tests.GetTestSubmission(ctx, req.TestID, studentID); err == nil {
		return classroom.TestResult{}, classroom.ErrAlreadySubmitted
	}

	questions, err := s.tests.ListQuestions(ctx, req.TestID)
	if err != nil {
		return classroom.TestResult{}, fmt.Errorf("list questions: %w", err)
	}
	if len(req.Answers) != len(questions) {
		return classroom.TestResult{}, classroom.ErrAnswerCountMismatch
	}

	score := 0
	for i, q := range questions {
		if req.Answers[i] == q.CorrectOptionIndex {
			score++
		}
	}

	sub, err := s.tests.CreateTestSubmission(ctx, classroom.TestSubmission{
		TestID:         req.TestID,
		StudentID:      studentID,
		Score:          score,
		TotalQuestions: len(questions),
		Answers:        classroom.Answers(req.Answers),
	})
	if err != nil {
		return classroom.TestResult{}, err
	}
	return classroom.TestResult{
		StudentID:      sub.StudentID,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		SubmittedAt:    sub.SubmittedAt,
	}, nil
}

// TestResults lists all graded submissions for the owning teacher.
func (s *Service) TestResults(ctx context.Context, teacherID, testID string) ([]classroom.TestResult, error) {
	t, err := s.tests.GetTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireTeacher(ctx, t.ClassroomID, teacherID); err != nil {
		return nil, err
	}
	subs, err := s.tests.ListTestSubmissions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("list test submissions: %w", err)
	}
	results := make([]classroom.TestResult, 0, len(subs))
	for _, sub := range subs {
		results = append(results, classroom.TestResult{
			StudentID:      sub.StudentID,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			SubmittedAt:    sub.SubmittedAt,
		})
	}
	return results, nil
}

func toResponse(c classroom.Classroom) classroom.ClassroomResponse {
	return classroom.ClassroomResponse{
		ID:        c.ID,
		Name:      c.Name,
		TeacherID: c.TeacherID,
		JoinCode:  c.JoinCode,
		CreatedAt: c.CreatedAt,
	}
}

func toResponses(list []classroom.Classroom) []classroom.ClassroomResponse {
	out := make([]classroom.ClassroomResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out
}
