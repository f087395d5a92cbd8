package postgresql

import (
	"context"
	"errors"

	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type classroomContentRepositoryImpl struct {
	db *database.DB
}

func NewClassroomContentRepository(db *database.DB) classroom.ContentRepository {
	return &classroomContentRepositoryImpl{db: db}
}

func (r *classroomContentRepositoryImpl) CreateNote(ctx context.Context, n classroom.Note) (classroom.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classroom_notes (id, classroom_id, title, file_url, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, classroom_id, title, file_url, created_at
	`
	var created classroom.Note
	err := q.QueryRow(ctx, query, n.ClassroomID, n.Title, n.FileURL).Scan(
		&created.ID, &created.ClassroomID, &created.Title, &created.FileURL, &created.CreatedAt,
	)
	return created, err
}

func (r *classroomContentRepositoryImpl) ListNotes(ctx context.Context, classroomID string) ([]classroom.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, classroom_id, title, file_url, created_at
		FROM classroom_notes
		WHERE classroom_id = $1
		ORDER BY created_at DESC
	`, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []classroom.Note
	for rows.Next() {
		var n classroom.Note
		if err := rows.Scan(&n.ID, &n.ClassroomID, &n.Title, &n.FileURL, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *classroomContentRepositoryImpl) CreateAssignment(ctx context.Context, a classroom.Assignment) (classroom.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classroom_assignments (id, classroom_id, title, file_url, deadline, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, classroom_id, title, file_url, deadline, created_at
	`
	var created classroom.Assignment
	err := q.QueryRow(ctx, query, a.ClassroomID, a.Title, a.FileURL, a.Deadline).Scan(
		&created.ID, &created.ClassroomID, &created.Title, &created.FileURL, &created.Deadline, &created.CreatedAt,
	)
	return created, err
}

func (r *classroomContentRepositoryImpl) GetAssignment(ctx context.Context, id string) (classroom.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	var a classroom.Assignment
	err := q.QueryRow(ctx, `
		SELECT id, classroom_id, title, file_url, deadline, created_at
		FROM classroom_assignments
		WHERE id = $1
	`, id).Scan(&a.ID, &a.ClassroomID, &a.Title, &a.FileURL, &a.Deadline, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return classroom.Assignment{}, classroom.ErrAssignmentNotFound
	}
	return a, err
}

func (r *classroomContentRepositoryImpl) ListAssignments(ctx context.Context, classroomID string) ([]classroom.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, classroom_id, title, file_url, deadline, created_at
		FROM classroom_assignments
		WHERE classroom_id = $1
		ORDER BY deadline
	`, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []classroom.Assignment
	for rows.Next() {
		var a classroom.Assignment
		if err := rows.Scan(&a.ID, &a.ClassroomID, &a.Title, &a.FileURL, &a.Deadline, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *classroomContentRepositoryImpl) CreateSubmission(ctx context.Context, s classroom.AssignmentSubmission) (classroom.AssignmentSubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classroom_assignment_submissions (id, assignment_id, student_id, file_url, submitted_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		ON CONFLICT (assignment_id, student_id)
		DO UPDATE SET file_url = EXCLUDED.file_url, submitted_at = NOW()
		RETURNING id, assignment_id, student_id, file_url, submitted_at
	`
	var created classroom.AssignmentSubmission
	err := q.QueryRow(ctx, query, s.AssignmentID, s.StudentID, s.FileURL).Scan(
		&created.ID, &created.AssignmentID, &created.StudentID, &created.FileURL, &created.SubmittedAt,
	)
	return created, err
}

func (r *classroomContentRepositoryImpl) ListSubmissions(ctx context.Context, assignmentID string) ([]classroom.AssignmentSubmission, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, assignment_id, student_id, file_url, submitted_at
		FROM classroom_assignment_submissions
		WHERE assignment_id = $1
		ORDER BY submitted_at
	`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []classroom.AssignmentSubmission
	for rows.Next() {
		var s classroom.AssignmentSubmission
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.FileURL, &s.SubmittedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
