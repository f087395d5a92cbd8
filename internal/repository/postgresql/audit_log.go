package postgresql

import (
	"context"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) attendance.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

func (r *auditLogRepositoryImpl) Create(ctx context.Context, entry attendance.AuditLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_audit_logs (id, student_roll_no, date, subject_id, old_status, new_status, updated_by, source, timestamp)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := q.Exec(ctx, query,
		entry.StudentRollNo,
		entry.Date,
		entry.SubjectID,
		entry.OldStatus,
		entry.NewStatus,
		entry.UpdatedBy,
		entry.Source,
	)
	return err
}

func (r *auditLogRepositoryImpl) ListByStudent(ctx context.Context, rollNo string) ([]attendance.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, student_roll_no, date, subject_id, old_status, new_status, updated_by, source, timestamp
		FROM attendance_audit_logs
		WHERE student_roll_no = $1
		ORDER BY timestamp DESC
	`
	rows, err := q.Query(ctx, query, rollNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []attendance.AuditLog
	for rows.Next() {
		var e attendance.AuditLog
		if err := rows.Scan(&e.ID, &e.StudentRollNo, &e.Date, &e.SubjectID, &e.OldStatus, &e.NewStatus, &e.UpdatedBy, &e.Source, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
