package student

type CreateStudentRequest struct {
	RollNo       string  `json:"roll_no"`
	RegdNo       *string `json:"regd_no,omitempty"`
	Name         string  `json:"name"`
	DepartmentID string  `json:"department_id"`
	Semester     int     `json:"semester"`
	UserID       *string `json:"user_id,omitempty"`
}

type StudentResponse struct {
	ID           string  `json:"id"`
	RollNo       string  `json:"roll_no"`
	RegdNo       *string `json:"regd_no,omitempty"`
	Name         string  `json:"name"`
	DepartmentID string  `json:"department_id"`
	Semester     int     `json:"semester"`
}

// DepartmentAnalytics aggregates headcount and attendance health for one
// department, for the HOD dashboard.
type DepartmentAnalytics struct {
	DepartmentID      string  `json:"department_id"`
	TotalStudents     int64   `json:"total_students"`
	BySemester        map[int]int64 `json:"by_semester"`
	AvgAttendancePct  float64 `json:"avg_attendance_pct"`
	MedicalLeavesUsed int64   `json:"medical_leaves_used"`
}
