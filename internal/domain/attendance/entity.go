package attendance

import "time"

type Status string

const (
	StatusPresent      Status = "PRESENT"
	StatusAbsent       Status = "ABSENT"
	StatusMedicalLeave Status = "MEDICAL_LEAVE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusMedicalLeave:
		return true
	}
	return false
}

// UpdatedByMedicalOCR is the audit actor tag for attendance transitions
// performed by the medical document pipeline rather than a person.
const UpdatedByMedicalOCR = "SYSTEM_MEDICAL_OCR"

// Session is one sitting of a subject on a given date. Records hang off it.
type Session struct {
	ID          string
	SubjectID   string
	FacultyID   string
	SessionDate time.Time
	CreatedAt   time.Time
}

type Record struct {
	ID            string
	SessionID     string
	StudentRollNo string
	Status        Status

	// Joined from the session for convenience in reads.
	SubjectID   *string
	SessionDate *time.Time
}

// AuditLog is an immutable trail entry for one record status transition.
// Rows are only ever inserted.
type AuditLog struct {
	ID            string
	StudentRollNo string
	Date          time.Time
	SubjectID     string
	OldStatus     *string
	NewStatus     string
	UpdatedBy     string
	Source        string
	Timestamp     time.Time
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// Schedule is a recurring timetable slot.
type Schedule struct {
	ID         string
	SubjectID  string
	FacultyID  string
	DayOfWeek  DayOfWeek
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	RoomNumber string
}
