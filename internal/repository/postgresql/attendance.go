package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) EnsureSession(ctx context.Context, subjectID, facultyID string, date time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	// Upsert keyed on (subject_id, session_date); the no-op update lets
	// RETURNING yield the existing row.
	query := `
		INSERT INTO attendance_sessions (id, subject_id, faculty_id, session_date, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		ON CONFLICT (subject_id, session_date)
		DO UPDATE SET subject_id = EXCLUDED.subject_id
		RETURNING id, subject_id, faculty_id, session_date, created_at
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, subjectID, facultyID, date).Scan(
		&s.ID, &s.SubjectID, &s.FacultyID, &s.SessionDate, &s.CreatedAt,
	)
	return s, err
}

func (r *attendanceRepositoryImpl) GetSessionByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, subject_id, faculty_id, session_date, created_at
		FROM attendance_sessions
		WHERE id = $1
	`
	var s attendance.Session
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.SubjectID, &s.FacultyID, &s.SessionDate, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Session{}, attendance.ErrSessionNotFound
	}
	return s, err
}

func (r *attendanceRepositoryImpl) EnsureRecords(ctx context.Context, sessionID string, rollNos []string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, session_id, student_roll_no, status)
		SELECT uuidv7(), $1, roll_no, 'ABSENT'
		FROM unnest($2::text[]) AS roll_no
		ON CONFLICT (session_id, student_roll_no) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, sessionID, rollNos); err != nil {
		return nil, err
	}

	return r.GetRecordsBySession(ctx, sessionID)
}

func (r *attendanceRepositoryImpl) GetRecordsBySession(ctx context.Context, sessionID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.session_id, ar.student_roll_no, ar.status
		FROM attendance_records ar
		WHERE ar.session_id = $1
		ORDER BY ar.student_roll_no
	`
	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.StudentRollNo, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) GetRecordsByStudentAndDate(ctx context.Context, rollNo string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.session_id, ar.student_roll_no, ar.status, s.subject_id, s.session_date
		FROM attendance_records ar
		JOIN attendance_sessions s ON s.id = ar.session_id
		WHERE ar.student_roll_no = $1 AND s.session_date = $2
	`
	rows, err := q.Query(ctx, query, rollNo, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.StudentRollNo, &rec.Status, &rec.SubjectID, &rec.SessionDate); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) SetRecordStatus(ctx context.Context, recordID string, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE attendance_records SET status = $2 WHERE id = $1`, recordID, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return errors.New("attendance record not found")
	}
	return nil
}

func (r *attendanceRepositoryImpl) StudentStats(ctx context.Context, rollNo string) ([]attendance.SubjectStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.subject_id,
			COUNT(*),
			COUNT(*) FILTER (WHERE ar.status = 'PRESENT'),
			COUNT(*) FILTER (WHERE ar.status = 'ABSENT'),
			COUNT(*) FILTER (WHERE ar.status = 'MEDICAL_LEAVE')
		FROM attendance_records ar
		JOIN attendance_sessions s ON s.id = ar.session_id
		WHERE ar.student_roll_no = $1
		GROUP BY s.subject_id
		ORDER BY s.subject_id
	`
	rows, err := q.Query(ctx, query, rollNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []attendance.SubjectStats
	for rows.Next() {
		var st attendance.SubjectStats
		if err := rows.Scan(&st.SubjectID, &st.TotalSessions, &st.Present, &st.Absent, &st.MedicalLeave); err != nil {
			return nil, err
		}
		if st.TotalSessions > 0 {
			st.Percentage = 100.0 * float64(st.Present+st.MedicalLeave) / float64(st.TotalSessions)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
