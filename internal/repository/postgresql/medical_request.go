package postgresql

import (
	"context"
	"errors"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type medicalRequestRepositoryImpl struct {
	db *database.DB
}

func NewMedicalRequestRepository(db *database.DB) medical.RequestRepository {
	return &medicalRequestRepositoryImpl{db: db}
}

const medicalRequestColumns = `id, student_roll_no, department_id, from_date, to_date, reason, document_path, status, hod_remark, created_at`

func scanMedicalRequest(row pgx.Row) (medical.Request, error) {
	var m medical.Request
	err := row.Scan(
		&m.ID,
		&m.StudentRollNo,
		&m.DepartmentID,
		&m.FromDate,
		&m.ToDate,
		&m.Reason,
		&m.DocumentPath,
		&m.Status,
		&m.HODRemark,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return medical.Request{}, medical.ErrRequestNotFound
	}
	return m, err
}

func (r *medicalRequestRepositoryImpl) Create(ctx context.Context, req medical.Request) (medical.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO medical_requests (id, student_roll_no, department_id, from_date, to_date, reason, document_path, status, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + medicalRequestColumns

	return scanMedicalRequest(q.QueryRow(ctx, query,
		req.StudentRollNo,
		req.DepartmentID,
		req.FromDate,
		req.ToDate,
		req.Reason,
		req.DocumentPath,
		req.Status,
	))
}

func (r *medicalRequestRepositoryImpl) GetByID(ctx context.Context, id string) (medical.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + medicalRequestColumns + ` FROM medical_requests WHERE id = $1`
	return scanMedicalRequest(q.QueryRow(ctx, query, id))
}

func (r *medicalRequestRepositoryImpl) GetPendingByDepartment(ctx context.Context, departmentID string) ([]medical.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + medicalRequestColumns + `
		FROM medical_requests
		WHERE department_id = $1 AND status = $2
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, departmentID, medical.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []medical.Request
	for rows.Next() {
		req, err := scanMedicalRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *medicalRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status medical.RequestStatus, remark *string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE medical_requests SET status = $2, hod_remark = $3 WHERE id = $1`,
		id, status, remark,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return medical.ErrRequestNotFound
	}
	return nil
}

func (r *medicalRequestRepositoryImpl) ListApprovedWithoutTerminalJob(ctx context.Context, limit int) ([]medical.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + medicalRequestColumns + `
		FROM medical_requests mr
		WHERE mr.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM medical_processing_jobs j
			WHERE j.medical_request_id = mr.id
			  AND j.processing_status IN ('COMPLETED', 'FAILED')
		  )
		ORDER BY mr.created_at
		LIMIT $2
	`
	rows, err := q.Query(ctx, query, medical.RequestStatusApproved, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []medical.Request
	for rows.Next() {
		req, err := scanMedicalRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
