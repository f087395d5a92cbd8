package medical

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "PENDING"
	ProcessingStatusProcessing ProcessingStatus = "PROCESSING"
	ProcessingStatusCompleted  ProcessingStatus = "COMPLETED"
	ProcessingStatusFailed     ProcessingStatus = "FAILED"
)

// Request is a student's medical-leave request. Immutable after creation
// except for status and the reviewer's remark; the processing pipeline
// never touches either.
type Request struct {
	ID            string
	StudentRollNo string
	DepartmentID  string
	FromDate      time.Time
	ToDate        time.Time
	Reason        string
	DocumentPath  string
	Status        RequestStatus
	HODRemark     *string
	CreatedAt     time.Time
}

// ProcessingJob records one pipeline run against an approved request.
// Append-only: every run inserts a new row, preserving history.
type ProcessingJob struct {
	ID                string
	RequestID         string
	OCRText           string
	ExtractedFromDate *time.Time
	ExtractedToDate   *time.Time
	ConfidenceScore   float64
	ProcessingStatus  ProcessingStatus
	ProcessedAt       time.Time
}
