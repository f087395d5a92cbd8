package attendance

import (
	"context"
	"time"
)

// AttendanceRepository covers attendance_sessions and attendance_records.
type AttendanceRepository interface {
	// EnsureSession returns the session for (subjectID, date), creating it
	// if it does not exist yet.
	EnsureSession(ctx context.Context, subjectID, facultyID string, date time.Time) (Session, error)
	GetSessionByID(ctx context.Context, id string) (Session, error)

	// EnsureRecords creates missing ABSENT records for the given roll
	// numbers on a session, then returns all records for it.
	EnsureRecords(ctx context.Context, sessionID string, rollNos []string) ([]Record, error)
	GetRecordsBySession(ctx context.Context, sessionID string) ([]Record, error)

	// GetRecordsByStudentAndDate returns the student's records across all
	// sessions scheduled on the given date, with subject id joined in.
	GetRecordsByStudentAndDate(ctx context.Context, rollNo string, date time.Time) ([]Record, error)

	SetRecordStatus(ctx context.Context, recordID string, status Status) error

	StudentStats(ctx context.Context, rollNo string) ([]SubjectStats, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry AuditLog) error
	ListByStudent(ctx context.Context, rollNo string) ([]AuditLog, error)
}

type ScheduleRepository interface {
	ListByFaculty(ctx context.Context, facultyID string) ([]ScheduleItem, error)
}
