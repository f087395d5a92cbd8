package classroom

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Classroom struct {
	ID        string
	Name      string
	TeacherID string
	JoinCode  string
	CreatedAt time.Time
}

type Member struct {
	ID          string
	ClassroomID string
	StudentID   string
	JoinedAt    time.Time
}

type Note struct {
	ID          string
	ClassroomID string
	Title       string
	FileURL     string
	CreatedAt   time.Time
}

type Assignment struct {
	ID          string
	ClassroomID string
	Title       string
	FileURL     string
	Deadline    time.Time
	CreatedAt   time.Time
}

type AssignmentSubmission struct {
	ID           string
	AssignmentID string
	StudentID    string
	FileURL      string
	SubmittedAt  time.Time
}

type Test struct {
	ID          string
	ClassroomID string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
}

// Options is the MCQ option list, stored as JSONB.
type Options []string

func (o Options) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *Options) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Options: invalid type")
	}
	return json.Unmarshal(bytes, o)
}

type TestQuestion struct {
	ID                 string
	TestID             string
	QuestionText       string
	Options            Options
	CorrectOptionIndex int
}

// Answers is the submitted option index per question, stored as JSONB.
type Answers []int

func (a Answers) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Answers) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Answers: invalid type")
	}
	return json.Unmarshal(bytes, a)
}

type TestSubmission struct {
	ID             string
	TestID         string
	StudentID      string
	Score          int
	TotalQuestions int
	Answers        Answers
	SubmittedAt    time.Time
}
