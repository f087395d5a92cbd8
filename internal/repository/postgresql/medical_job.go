package postgresql

import (
	"context"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
)

type medicalJobRepositoryImpl struct {
	db *database.DB
}

func NewMedicalJobRepository(db *database.DB) medical.JobRepository {
	return &medicalJobRepositoryImpl{db: db}
}

func (r *medicalJobRepositoryImpl) Create(ctx context.Context, job medical.ProcessingJob) (medical.ProcessingJob, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO medical_processing_jobs
			(id, medical_request_id, ocr_text, extracted_from_date, extracted_to_date, confidence_score, processing_status, processed_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, medical_request_id, ocr_text, extracted_from_date, extracted_to_date, confidence_score, processing_status, processed_at
	`

	var created medical.ProcessingJob
	err := q.QueryRow(ctx, query,
		job.RequestID,
		job.OCRText,
		job.ExtractedFromDate,
		job.ExtractedToDate,
		job.ConfidenceScore,
		job.ProcessingStatus,
	).Scan(
		&created.ID,
		&created.RequestID,
		&created.OCRText,
		&created.ExtractedFromDate,
		&created.ExtractedToDate,
		&created.ConfidenceScore,
		&created.ProcessingStatus,
		&created.ProcessedAt,
	)
	return created, err
}

func (r *medicalJobRepositoryImpl) ListByRequestID(ctx context.Context, requestID string) ([]medical.ProcessingJob, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, medical_request_id, ocr_text, extracted_from_date, extracted_to_date, confidence_score, processing_status, processed_at
		FROM medical_processing_jobs
		WHERE medical_request_id = $1
		ORDER BY processed_at DESC
	`
	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []medical.ProcessingJob
	for rows.Next() {
		var job medical.ProcessingJob
		if err := rows.Scan(
			&job.ID,
			&job.RequestID,
			&job.OCRText,
			&job.ExtractedFromDate,
			&job.ExtractedToDate,
			&job.ConfidenceScore,
			&job.ProcessingStatus,
			&job.ProcessedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
