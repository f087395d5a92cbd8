package postgresql

import (
	"context"
	"errors"

	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type classroomRepositoryImpl struct {
	db *database.DB
}

func NewClassroomRepository(db *database.DB) classroom.ClassroomRepository {
	return &classroomRepositoryImpl{db: db}
}

const classroomColumns = `id, name, teacher_id, join_code, created_at`

func scanClassroom(row pgx.Row) (classroom.Classroom, error) {
	var c classroom.Classroom
	err := row.Scan(&c.ID, &c.Name, &c.TeacherID, &c.JoinCode, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return classroom.Classroom{}, classroom.ErrClassroomNotFound
	}
	return c, err
}

func (r *classroomRepositoryImpl) Create(ctx context.Context, c classroom.Classroom) (classroom.Classroom, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classrooms (id, name, teacher_id, join_code, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING ` + classroomColumns

	return scanClassroom(q.QueryRow(ctx, query, c.Name, c.TeacherID, c.JoinCode))
}

func (r *classroomRepositoryImpl) GetByID(ctx context.Context, id string) (classroom.Classroom, error) {
	q := GetQuerier(ctx, r.db)
	return scanClassroom(q.QueryRow(ctx, `SELECT `+classroomColumns+` FROM classrooms WHERE id = $1`, id))
}

func (r *classroomRepositoryImpl) GetByJoinCode(ctx context.Context, code string) (classroom.Classroom, error) {
	q := GetQuerier(ctx, r.db)
	c, err := scanClassroom(q.QueryRow(ctx, `SELECT `+classroomColumns+` FROM classrooms WHERE join_code = $1`, code))
	if errors.Is(err, classroom.ErrClassroomNotFound) {
		return classroom.Classroom{}, classroom.ErrInvalidJoinCode
	}
	return c, err
}

func (r *classroomRepositoryImpl) ListByStudent(ctx context.Context, studentID string) ([]classroom.Classroom, error) {
	query := `
		SELECT c.id, c.name, c.teacher_id, c.join_code, c.created_at
		FROM classrooms c
		JOIN classroom_members m ON m.classroom_id = c.id
		WHERE m.student_id = $1
		ORDER BY c.created_at DESC
	`
	return r.queryClassrooms(ctx, query, studentID)
}

func (r *classroomRepositoryImpl) ListByTeacher(ctx context.Context, teacherID string) ([]classroom.Classroom, error) {
	query := `
		SELECT ` + classroomColumns + `
		FROM classrooms
		WHERE teacher_id = $1
		ORDER BY created_at DESC
	`
	return r.queryClassrooms(ctx, query, teacherID)
}

func (r *classroomRepositoryImpl) queryClassrooms(ctx context.Context, query string, args ...interface{}) ([]classroom.Classroom, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []classroom.Classroom
	for rows.Next() {
		c, err := scanClassroom(rows)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

func (r *classroomRepositoryImpl) AddMember(ctx context.Context, m classroom.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classroom_members (id, classroom_id, student_id, joined_at)
		VALUES (uuidv7(), $1, $2, NOW())
		ON CONFLICT (classroom_id, student_id) DO NOTHING
	`
	commandTag, err := q.Exec(ctx, query, m.ClassroomID, m.StudentID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return classroom.ErrAlreadyMember
	}
	return nil
}

func (r *classroomRepositoryImpl) IsMember(ctx context.Context, classroomID, studentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classroom_members WHERE classroom_id = $1 AND student_id = $2)`,
		classroomID, studentID,
	).Scan(&exists)
	return exists, err
}
