package classroom

import "time"

type CreateClassroomRequest struct {
	Name string `json:"name"`
}

type ClassroomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeacherID string    `json:"teacher_id"`
	JoinCode  string    `json:"join_code"`
	CreatedAt time.Time `json:"created_at"`
}

type JoinRequest struct {
	JoinCode string `json:"join_code"`
}

type CreateQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

type CreateTestRequest struct {
	Title     string           `json:"title"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	Questions []CreateQuestion `json:"questions"`
}

// QuestionView is a test question as shown to a student: the correct
// option index is withheld.
type QuestionView struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

type SubmitTestRequest struct {
	TestID  string `json:"test_id"`
	Answers []int  `json:"answers"`
}

type TestResult struct {
	StudentID      string    `json:"student_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
