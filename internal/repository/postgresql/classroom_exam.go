package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type classroomExamRepositoryImpl struct {
	db *database.DB
}

func NewClassroomExamRepository(db *database.DB) classroom.TestRepository {
	return &classroomExamRepositoryImpl{db: db}
}

// CreateTest inserts the test and its questions in one transaction.
func (r *classroomExamRepositoryImpl) CreateTest(ctx context.Context, t classroom.Test, questions []classroom.TestQuestion) (classroom.Test, error) {
	var created classroom.Test

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		err := q.QueryRow(txCtx, `
			INSERT INTO classroom_tests (id, classroom_id, title, start_time, end_time, created_at)
			VALUES (uuidv7(), $1, $2, $3, $4, NOW())
			RETURNING id, classroom_id, title, start_time, end_time, created_at
		`, t.ClassroomID, t.Title, t.StartTime, t.EndTime).Scan(
			&created.ID, &created.ClassroomID, &created.Title, &created.StartTime, &created.EndTime, &created.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert test: %w", err)
		}

		for _, question := range questions {
			_, err := q.Exec(txCtx, `
				INSERT INTO classroom_test_questions (id, test_id, question_text, options, correct_option_index)
				VALUES (uuidv7(), $1, $2, $3, $4)
			`, created.ID, question.QuestionText, question.Options, question.CorrectOptionIndex)
			if err != nil {
				return fmt.Errorf("insert question: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return classroom.Test{}, err
	}
	return created, nil
}

func (r *classroomExamRepositoryImpl) GetTest(ctx context.Context, id string) (classroom.Test, error) {
	q := GetQuerier(ctx, r.db)

	var t classroom.Test
	err := q.QueryRow(ctx, `
		SELECT id, classroom_id, title, start_time, end_time, created_at
		FROM classroom_tests
		WHERE id = $1
	`, id).Scan(&t.ID, &t.ClassroomID, &t.Title, &t.StartTime, &t.EndTime, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return classroom.Test{}, classroom.ErrTestNotFound
	}
	return t, err
}

func (r *classroomExamRepositoryImpl) ListTests(ctx context.Context, classroomID string) ([]classroom.Test, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, classroom_id, title, start_time, end_time, created_at
		FROM classroom_tests
		WHERE classroom_id = $1
		ORDER BY start_time DESC
	`, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []classroom.Test
	for rows.Next() {
		var t classroom.Test
		if err := rows.Scan(&t.ID, &t.ClassroomID, &t.Title, &t.StartTime, &t.EndTime, &t.CreatedAt); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (r *classroomExamRepositoryImpl) ListQuestions(ctx context.Context, testID string) ([]classroom.TestQuestion, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, test_id, question_text, options, correct_option_index
		FROM classroom_test_questions
		WHERE test_id = $1
		ORDER BY id
	`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []classroom.TestQuestion
	for rows.Next() {
		var question classroom.TestQuestion
		if err := rows.Scan(&question.ID, &question.TestID, &question.QuestionText, &question.Options, &question.CorrectOptionIndex); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func (r *classroomExamRepositoryImpl) CreateTestSubmission(ctx context.Context, s classroom.TestSubmission) (classroom.TestSubmission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classroom_test_submissions (id, test_id, student_id, score, total_questions, answers, submitted_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, test_id, student_id, score, total_questions, answers, submitted_at
	`
	var created classroom.TestSubmission
	err := q.QueryRow(ctx, query, s.TestID, s.StudentID, s.Score, s.TotalQuestions, s.Answers).Scan(
		&created.ID, &created.TestID, &created.StudentID, &created.Score, &created.TotalQuestions, &created.Answers, &created.SubmittedAt,
	)
	return created, err
}

func (r *classroomExamRepositoryImpl) GetTestSubmission(ctx context.Context, testID, studentID string) (classroom.TestSubmission, error) {
	q := GetQuerier(ctx, r.db)

	var s classroom.TestSubmission
	err := q.QueryRow(ctx, `
		SELECT id, test_id, student_id, score, total_questions, answers, submitted_at
		FROM classroom_test_submissions
		WHERE test_id = $1 AND student_id = $2
	`, testID, studentID).Scan(&s.ID, &s.TestID, &s.StudentID, &s.Score, &s.TotalQuestions, &s.Answers, &s.SubmittedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return classroom.TestSubmission{}, pgx.ErrNoRows
	}
	return s, err
}

func (r *classroomExamRepositoryImpl) ListTestSubmissions(ctx context.Context, testID string) ([]classroom.TestSubmission, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, test_id, student_id, score, total_questions, answers, submitted_at
		FROM classroom_test_submissions
		WHERE test_id = $1
		ORDER BY submitted_at
	`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []classroom.TestSubmission
	for rows.Next() {
		var s classroom.TestSubmission
		if err := rows.Scan(&s.ID, &s.TestID, &s.StudentID, &s.Score, &s.TotalQuestions, &s.Answers, &s.SubmittedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
