package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ScriptedSpythoN/demoos/internal/domain/subject"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subjectRepositoryImpl struct {
	db *database.DB
}

func NewSubjectRepository(db *database.DB) subject.SubjectRepository {
	return &subjectRepositoryImpl{db: db}
}

const subjectColumns = `id, code, name, department_id, semester, faculty_id, created_at`

func scanSubject(row pgx.Row) (subject.Subject, error) {
	var s subject.Subject
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.DepartmentID, &s.Semester, &s.FacultyID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return subject.Subject{}, subject.ErrSubjectNotFound
	}
	return s, err
}

func (r *subjectRepositoryImpl) Create(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subjects (id, code, name, department_id, semester, faculty_id, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING ` + subjectColumns

	return scanSubject(q.QueryRow(ctx, query, s.Code, s.Name, s.DepartmentID, s.Semester, s.FacultyID))
}

func (r *subjectRepositoryImpl) GetByID(ctx context.Context, id string) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1`
	return scanSubject(q.QueryRow(ctx, query, id))
}

func (r *subjectRepositoryImpl) List(ctx context.Context, departmentID string, semester int) ([]subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE 1=1`
	args := []interface{}{}
	if departmentID != "" {
		args = append(args, departmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	if semester > 0 {
		args = append(args, semester)
		query += fmt.Sprintf(" AND semester = $%d", len(args))
	}
	query += " ORDER BY code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []subject.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *subjectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return subject.ErrSubjectNotFound
	}
	return nil
}
