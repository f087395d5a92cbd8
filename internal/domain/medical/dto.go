package medical

import "time"

// SubmitRequest carries the declared leave details from the multipart form.
// The document itself is streamed to storage by the handler.
type SubmitRequest struct {
	StudentRollNo string
	DepartmentID  string
	FromDate      time.Time
	ToDate        time.Time
	Reason        string
	DocumentPath  string
}

type SubmitResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type ReviewRequest struct {
	RequestID string  `json:"request_id"`
	Action    string  `json:"action"` // APPROVED or REJECTED
	Remark    *string `json:"remark,omitempty"`
}

type ListItem struct {
	RequestID     string  `json:"request_id"`
	StudentRollNo string  `json:"student_roll_no"`
	FromDate      string  `json:"from_date"`
	ToDate        string  `json:"to_date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	HODRemark     *string `json:"hod_remark,omitempty"`
}

type JobItem struct {
	JobID             string  `json:"job_id"`
	ProcessingStatus  string  `json:"processing_status"`
	ExtractedFromDate *string `json:"extracted_from_date,omitempty"`
	ExtractedToDate   *string `json:"extracted_to_date,omitempty"`
	ConfidenceScore   float64 `json:"confidence_score"`
	ProcessedAt       string  `json:"processed_at"`
}
