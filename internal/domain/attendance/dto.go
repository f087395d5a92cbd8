package attendance

type RollListRequest struct {
	SubjectID   string `json:"subject_id"`
	FacultyID   string `json:"faculty_id"`
	SessionDate string `json:"session_date"` // "2006-01-02"
}

type RollListEntry struct {
	RollNo string `json:"roll_no"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

type RollListResponse struct {
	SessionID string          `json:"session_id"`
	Students  []RollListEntry `json:"students"`
}

type SubmitEntry struct {
	RollNo string `json:"roll_no"`
	Status Status `json:"status"`
}

type SubmitRequest struct {
	SessionID string        `json:"session_id"`
	Entries   []SubmitEntry `json:"entries"`
}

type ScheduleItem struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	RoomNumber  string `json:"room_number"`
}

// SubjectStats is attendance health for one student in one subject.
// Medical leave counts toward the attended percentage.
type SubjectStats struct {
	SubjectID     string  `json:"subject_id"`
	TotalSessions int64   `json:"total_sessions"`
	Present       int64   `json:"present"`
	Absent        int64   `json:"absent"`
	MedicalLeave  int64   `json:"medical_leave"`
	Percentage    float64 `json:"percentage"`
}

type StudentStatsResponse struct {
	RollNo   string         `json:"roll_no"`
	Subjects []SubjectStats `json:"subjects"`
}
