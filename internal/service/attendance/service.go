package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
)

const sessionDateLayout = "2006-01-02"

// Service owns attendance sessions, records, the audit trail, and the
// medical-leave transition the document pipeline triggers.
type Service struct {
	records   attendance.AttendanceRepository
	audit     attendance.AuditLogRepository
	schedules attendance.ScheduleRepository
	students  student.StudentRepository
	logger    *slog.Logger
}

func NewService(records attendance.AttendanceRepository, audit attendance.AuditLogRepository, schedules attendance.ScheduleRepository, students student.StudentRepository, logger *slog.Logger) *Service {
	return &Service{
		records:   records,
		audit:     audit,
		schedules: schedules,
		students:  students,
		logger:    logger,
	}
}

// RollList ensures a session and its records exist for the faculty's
// class on a date, seeding every enrolled student as ABSENT, and returns
// the roll list with current statuses.
func (s *Service) RollList(ctx context.Context, req attendance.RollListRequest, departmentID string, semester int) (attendance.RollListResponse, error) {
	date, err := time.Parse(sessionDateLayout, req.SessionDate)
	if err != nil {
		return attendance.RollListResponse{}, fmt.Errorf("parse session date: %w", err)
	}

	roster, err := s.students.List(ctx, departmentID, semester)
	if err != nil {
		return attendance.RollListResponse{}, fmt.Errorf("load roster: %w", err)
	}

	session, err := s.records.EnsureSession(ctx, req.SubjectID, req.FacultyID, date)
	if err != nil {
		return attendance.RollListResponse{}, fmt.Errorf("ensure session: %w", err)
	}

	rollNos := make([]string, 0, len(roster))
	names := make(map[string]string, len(roster))
	for _, st := range roster {
		rollNos = append(rollNos, st.RollNo)
		names[st.RollNo] = st.Name
	}

	records, err := s.records.EnsureRecords(ctx, session.ID, rollNos)
	if err != nil {
		return attendance.RollListResponse{}, fmt.Errorf("ensure records: %w", err)
	}

	resp := attendance.RollListResponse{SessionID: session.ID, Students: make([]attendance.RollListEntry, 0, len(records))}
	for _, rec := range records {
		resp.Students = append(resp.Students, attendance.RollListEntry{
			RollNo: rec.StudentRollNo,
			Name:   names[rec.StudentRollNo],
			Status: rec.Status,
		})
	}
	return resp, nil
}

// Submit applies a faculty member's marked statuses to an existing
// session, writing an audit entry for each record that actually changed.
func (s *Service) Submit(ctx context.Context, req attendance.SubmitRequest, updatedBy string) error {
	session, err := s.records.GetSessionByID(ctx, req.SessionID)
	if err != nil {
		return err
	}

	current, err := s.records.GetRecordsBySession(ctx, req.SessionID)
	if err != nil {
		return fmt.Errorf("load session records: %w", err)
	}
	byRoll := make(map[string]attendance.Record, len(current))
	for _, rec := range current {
		byRoll[rec.StudentRollNo] = rec
	}

	for _, entry := range req.Entries {
		if !entry.Status.Valid() {
			return attendance.ErrInvalidStatus
		}
		rec, ok := byRoll[entry.RollNo]
		if !ok || rec.Status == entry.Status {
			continue
		}
		if err := s.transition(ctx, rec, entry.Status, session.SubjectID, session.SessionDate, updatedBy, "MANUAL"); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMedicalLeave flips the student's ABSENT records to MEDICAL_LEAVE
// for every session day in [from, to], auditing each transition under the
// pipeline's system actor. Records already PRESENT or MEDICAL_LEAVE are
// left untouched. An unknown roll number is a no-op, not an error.
// Returns the number of records updated.
func (s *Service) ApplyMedicalLeave(ctx context.Context, rollNo string, from, to time.Time) (int, error) {
	if _, err := s.students.GetByRollNo(ctx, rollNo); err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			s.logger.Warn("medical leave target has no student record",
				slog.String("roll_no", rollNo))
			return 0, nil
		}
		return 0, fmt.Errorf("resolve student: %w", err)
	}

	updated := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		records, err := s.records.GetRecordsByStudentAndDate(ctx, rollNo, day)
		if err != nil {
			return updated, fmt.Errorf("load records for %s: %w", day.Format(sessionDateLayout), err)
		}
		for _, rec := range records {
			if rec.Status != attendance.StatusAbsent {
				continue
			}
			subjectID := ""
			if rec.SubjectID != nil {
				subjectID = *rec.SubjectID
			}
			if err := s.transition(ctx, rec, attendance.StatusMedicalLeave, subjectID, day, attendance.UpdatedByMedicalOCR, "MEDICAL_OCR"); err != nil {
				return updated, err
			}
			updated++
		}
	}
	return updated, nil
}

// transition sets the new status and appends the audit entry.
func (s *Service) transition(ctx context.Context, rec attendance.Record, status attendance.Status, subjectID string, date time.Time, updatedBy, source string) error {
	if err := s.records.SetRecordStatus(ctx, rec.ID, status); err != nil {
		return fmt.Errorf("set record status: %w", err)
	}
	old := string(rec.Status)
	if err := s.audit.Create(ctx, attendance.AuditLog{
		StudentRollNo: rec.StudentRollNo,
		Date:          date,
		SubjectID:     subjectID,
		OldStatus:     &old,
		NewStatus:     string(status),
		UpdatedBy:     updatedBy,
		Source:        source,
	}); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// StudentStats reports per-subject attendance health for one student.
func (s *Service) StudentStats(ctx context.Context, rollNo string) (attendance.StudentStatsResponse, error) {
	if _, err := s.students.GetByRollNo(ctx, rollNo); err != nil {
		return attendance.StudentStatsResponse{}, err
	}
	stats, err := s.records.StudentStats(ctx, rollNo)
	if err != nil {
		return attendance.StudentStatsResponse{}, fmt.Errorf("load attendance stats: %w", err)
	}
	return attendance.StudentStatsResponse{RollNo: rollNo, Subjects: stats}, nil
}

// AuditTrail returns the full status transition history for one student.
func (s *Service) AuditTrail(ctx context.Context, rollNo string) ([]attendance.AuditLog, error) {
	return s.audit.ListByStudent(ctx, rollNo)
}

// FacultySchedule lists the timetable slots for a faculty member.
func (s *Service) FacultySchedule(ctx context.Context, facultyID string) ([]attendance.ScheduleItem, error) {
	return s.schedules.ListByFaculty(ctx, facultyID)
}
