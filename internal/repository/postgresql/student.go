package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentRepositoryImpl struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepositoryImpl{db: db}
}

const studentColumns = `id, user_id, roll_no, regd_no, name, department_id, semester, created_at`

func scanStudent(row pgx.Row) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.RollNo,
		&s.RegdNo,
		&s.Name,
		&s.DepartmentID,
		&s.Semester,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, err
}

func (r *studentRepositoryImpl) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (id, user_id, roll_no, regd_no, name, department_id, semester, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + studentColumns

	return scanStudent(q.QueryRow(ctx, query, s.UserID, s.RollNo, s.RegdNo, s.Name, s.DepartmentID, s.Semester))
}

func (r *studentRepositoryImpl) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(q.QueryRow(ctx, query, id))
}

func (r *studentRepositoryImpl) GetByRollNo(ctx context.Context, rollNo string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + studentColumns + ` FROM students WHERE roll_no = $1`
	return scanStudent(q.QueryRow(ctx, query, rollNo))
}

func (r *studentRepositoryImpl) List(ctx context.Context, departmentID string, semester int) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	args := []interface{}{}
	if departmentID != "" {
		args = append(args, departmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	if semester > 0 {
		args = append(args, semester)
		query += fmt.Sprintf(" AND semester = $%d", len(args))
	}
	query += " ORDER BY roll_no"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return student.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepositoryImpl) DepartmentAnalytics(ctx context.Context, departmentID string) (student.DepartmentAnalytics, error) {
	q := GetQuerier(ctx, r.db)

	analytics := student.DepartmentAnalytics{
		DepartmentID: departmentID,
		BySemester:   make(map[int]int64),
	}

	rows, err := q.Query(ctx, `
		SELECT semester, COUNT(*)
		FROM students
		WHERE department_id = $1
		GROUP BY semester
	`, departmentID)
	if err != nil {
		return analytics, err
	}
	defer rows.Close()

	for rows.Next() {
		var semester int
		var count int64
		if err := rows.Scan(&semester, &count); err != nil {
			return analytics, err
		}
		analytics.BySemester[semester] = count
		analytics.TotalStudents += count
	}
	if err := rows.Err(); err != nil {
		return analytics, err
	}

	// Attendance health across the department. MEDICAL_LEAVE counts as
	// attended in the percentage, same as the per-student stats.
	err = q.QueryRow(ctx, `
		SELECT
			COALESCE(
				100.0 * COUNT(*) FILTER (WHERE ar.status IN ('PRESENT', 'MEDICAL_LEAVE'))
				/ NULLIF(COUNT(*), 0),
			0),
			COUNT(*) FILTER (WHERE ar.status = 'MEDICAL_LEAVE')
		FROM attendance_records ar
		JOIN students s ON s.roll_no = ar.student_roll_no
		WHERE s.department_id = $1
	`, departmentID).Scan(&analytics.AvgAttendancePct, &analytics.MedicalLeavesUsed)
	if err != nil {
		return analytics, err
	}

	return analytics, nil
}
