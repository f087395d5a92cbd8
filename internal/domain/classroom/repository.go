package classroom

import "context"

type ClassroomRepository interface {
	Create(ctx context.Context, c Classroom) (Classroom, error)
	GetByID(ctx context.Context, id string) (Classroom, error)
	GetByJoinCode(ctx context.Context, code string) (Classroom, error)
	ListByStudent(ctx context.Context, studentID string) ([]Classroom, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]Classroom, error)

	AddMember(ctx context.Context, m Member) error
	IsMember(ctx context.Context, classroomID, studentID string) (bool, error)
}

type ContentRepository interface {
	CreateNote(ctx context.Context, n Note) (Note, error)
	ListNotes(ctx context.Context, classroomID string) ([]Note, error)

	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	GetAssignment(ctx context.Context, id string) (Assignment, error)
	ListAssignments(ctx context.Context, classroomID string) ([]Assignment, error)
	CreateSubmission(ctx context.Context, s AssignmentSubmission) (AssignmentSubmission, error)
	ListSubmissions(ctx context.Context, assignmentID string) ([]AssignmentSubmission, error)
}

type TestRepository interface {
	CreateTest(ctx context.Context, t Test, questions []TestQuestion) (Test, error)
	GetTest(ctx context.Context, id string) (Test, error)
	ListTests(ctx context.Context, classroomID string) ([]Test, error)
	ListQuestions(ctx context.Context, testID string) ([]TestQuestion, error)

	CreateTestSubmission(ctx context.Context, s TestSubmission) (TestSubmission, error)
	GetTestSubmission(ctx context.Context, testID, studentID string) (TestSubmission, error)
	ListTestSubmissions(ctx context.Context, testID string) ([]TestSubmission, error)
}
