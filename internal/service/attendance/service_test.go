package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
)

type fakeAttendanceRepo struct {
	sessions map[string]attendance.Session
	records  map[string]attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		sessions: make(map[string]attendance.Session),
		records:  make(map[string]attendance.Record),
	}
}

func (r *fakeAttendanceRepo) addRecord(rollNo, subjectID string, date time.Time, status attendance.Status) string {
	id := fmt.Sprintf("rec-%d", len(r.records)+1)
	r.records[id] = attendance.Record{
		ID:            id,
		SessionID:     "sess-" + subjectID + date.Format("20060102"),
		StudentRollNo: rollNo,
		Status:        status,
		SubjectID:     &subjectID,
		SessionDate:   &date,
	}
	return id
}

func (r *fakeAttendanceRepo) EnsureSession(_ context.Context, subjectID, facultyID string, date time.Time) (attendance.Session, error) {
	key := subjectID + date.Format("20060102")
	if s, ok := r.sessions[key]; ok {
		return s, nil
	}
	s := attendance.Session{ID: "sess-" + key, SubjectID: subjectID, FacultyID: facultyID, SessionDate: date}
	r.sessions[key] = s
	return s, nil
}

func (r *fakeAttendanceRepo) GetSessionByID(_ context.Context, id string) (attendance.Session, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return attendance.Session{}, attendance.ErrSessionNotFound
}

func (r *fakeAttendanceRepo) EnsureRecords(_ context.Context, sessionID string, rollNos []string) ([]attendance.Record, error) {
	for _, rollNo := range rollNos {
		exists := false
		for _, rec := range r.records {
			if rec.SessionID == sessionID && rec.StudentRollNo == rollNo {
				exists = true
				break
			}
		}
		if !exists {
			id := fmt.Sprintf("rec-%d", len(r.records)+1)
			r.records[id] = attendance.Record{ID: id, SessionID: sessionID, StudentRollNo: rollNo, Status: attendance.StatusAbsent}
		}
	}
	return r.GetRecordsBySession(context.Background(), sessionID)
}

func (r *fakeAttendanceRepo) GetRecordsBySession(_ context.Context, sessionID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetRecordsByStudentAndDate(_ context.Context, rollNo string, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.StudentRollNo == rollNo && rec.SessionDate != nil && rec.SessionDate.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) SetRecordStatus(_ context.Context, recordID string, status attendance.Status) error {
	rec, ok := r.records[recordID]
	if !ok {
		return fmt.Errorf("record %s not found", recordID)
	}
	rec.Status = status
	r.records[recordID] = rec
	return nil
}

func (r *fakeAttendanceRepo) StudentStats(context.Context, string) ([]attendance.SubjectStats, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []attendance.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, entry attendance.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) ListByStudent(_ context.Context, rollNo string) ([]attendance.AuditLog, error) {
	var out []attendance.AuditLog
	for _, e := range r.entries {
		if e.StudentRollNo == rollNo {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct{}

func (fakeScheduleRepo) ListByFaculty(context.Context, string) ([]attendance.ScheduleItem, error) {
	return nil, nil
}

type fakeStudentRepo struct {
	byRollNo map[string]student.Student
}

func (r *fakeStudentRepo) Create(_ context.Context, s student.Student) (student.Student, error) {
	r.byRollNo[s.RollNo] = s
	return s, nil
}

func (r *fakeStudentRepo) GetByID(context.Context, string) (student.Student, error) {
	return student.Student{}, student.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetByRollNo(_ context.Context, rollNo string) (student.Student, error) {
	s, ok := r.byRollNo[rollNo]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) List(context.Context, string, int) ([]student.Student, error) {
	var out []student.Student
	for _, s := range r.byRollNo {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStudentRepo) Delete(context.Context, string) error { return nil }

func (r *fakeStudentRepo) DepartmentAnalytics(context.Context, string) (student.DepartmentAnalytics, error) {
	return student.DepartmentAnalytics{}, nil
}

func newTestService(records *fakeAttendanceRepo, audit *fakeAuditRepo, students *fakeStudentRepo) *Service {
	return NewService(records, audit, fakeScheduleRepo{}, students,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApplyMedicalLeave(t *testing.T) {
	day1 := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)

	records := newFakeAttendanceRepo()
	absentDay1 := records.addRecord("CS21B001", "subj-1", day1, attendance.StatusAbsent)
	presentDay1 := records.addRecord("CS21B001", "subj-2", day1, attendance.StatusPresent)
	medicalDay1 := records.addRecord("CS21B001", "subj-3", day1, attendance.StatusMedicalLeave)
	absentDay2 := records.addRecord("CS21B001", "subj-1", day2, attendance.StatusAbsent)
	otherStudent := records.addRecord("CS21B002", "subj-1", day1, attendance.StatusAbsent)

	audit := &fakeAuditRepo{}
	students := &fakeStudentRepo{byRollNo: map[string]student.Student{
		"CS21B001": {ID: "st-1", RollNo: "CS21B001", Name: "Asha"},
	}}
	svc := newTestService(records, audit, students)

	updated, err := svc.ApplyMedicalLeave(context.Background(), "CS21B001", day1, day2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	assert.Equal(t, attendance.StatusMedicalLeave, records.records[absentDay1].Status)
	assert.Equal(t, attendance.StatusMedicalLeave, records.records[absentDay2].Status)
	assert.Equal(t, attendance.StatusPresent, records.records[presentDay1].Status)
	assert.Equal(t, attendance.StatusMedicalLeave, records.records[medicalDay1].Status)
	assert.Equal(t, attendance.StatusAbsent, records.records[otherStudent].Status)

	require.Len(t, audit.entries, 2)
	for _, e := range audit.entries {
		assert.Equal(t, "CS21B001", e.StudentRollNo)
		assert.Equal(t, attendance.UpdatedByMedicalOCR, e.UpdatedBy)
		assert.Equal(t, "MEDICAL_OCR", e.Source)
		require.NotNil(t, e.OldStatus)
		assert.Equal(t, string(attendance.StatusAbsent), *e.OldStatus)
		assert.Equal(t, string(attendance.StatusMedicalLeave), e.NewStatus)
	}
}

func TestApplyMedicalLeaveUnknownStudentIsNoOp(t *testing.T) {
	day := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	records := newFakeAttendanceRepo()
	rec := records.addRecord("CS21B001", "subj-1", day, attendance.StatusAbsent)

	audit := &fakeAuditRepo{}
	students := &fakeStudentRepo{byRollNo: map[string]student.Student{}}
	svc := newTestService(records, audit, students)

	updated, err := svc.ApplyMedicalLeave(context.Background(), "NOPE123", day, day)
	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Empty(t, audit.entries)
	assert.Equal(t, attendance.StatusAbsent, records.records[rec].Status)
}

func TestApplyMedicalLeaveRepeatRunChangesNothing(t *testing.T) {
	day := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	records := newFakeAttendanceRepo()
	records.addRecord("CS21B001", "subj-1", day, attendance.StatusAbsent)

	audit := &fakeAuditRepo{}
	students := &fakeStudentRepo{byRollNo: map[string]student.Student{
		"CS21B001": {ID: "st-1", RollNo: "CS21B001", Name: "Asha"},
	}}
	svc := newTestService(records, audit, students)

	first, err := svc.ApplyMedicalLeave(context.Background(), "CS21B001", day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.ApplyMedicalLeave(context.Background(), "CS21B001", day, day)
	require.NoError(t, err)
	assert.Zero(t, second)
	assert.Len(t, audit.entries, 1)
}

func TestSubmitAuditsOnlyChangedRecords(t *testing.T) {
	day := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	records := newFakeAttendanceRepo()
	session, err := records.EnsureSession(context.Background(), "subj-1", "fac-1", day)
	require.NoError(t, err)
	_, err = records.EnsureRecords(context.Background(), session.ID, []string{"CS21B001", "CS21B002"})
	require.NoError(t, err)

	audit := &fakeAuditRepo{}
	students := &fakeStudentRepo{byRollNo: map[string]student.Student{}}
	svc := newTestService(records, audit, students)

	err = svc.Submit(context.Background(), attendance.SubmitRequest{
		SessionID: session.ID,
		Entries: []attendance.SubmitEntry{
			{RollNo: "CS21B001", Status: attendance.StatusPresent},
			{RollNo: "CS21B002", Status: attendance.StatusAbsent}, // unchanged
		},
	}, "fac-1")
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "CS21B001", audit.entries[0].StudentRollNo)
	assert.Equal(t, "fac-1", audit.entries[0].UpdatedBy)
	assert.Equal(t, "MANUAL", audit.entries[0].Source)
}

func TestSubmitRejectsInvalidStatus(t *testing.T) {
	day := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	records := newFakeAttendanceRepo()
	session, err := records.EnsureSession(context.Background(), "subj-1", "fac-1", day)
	require.NoError(t, err)

	svc := newTestService(records, &fakeAuditRepo{}, &fakeStudentRepo{byRollNo: map[string]student.Student{}})

	err = svc.Submit(context.Background(), attendance.SubmitRequest{
		SessionID: session.ID,
		Entries:   []attendance.SubmitEntry{{RollNo: "CS21B001", Status: "LATE"}},
	}, "fac-1")
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)
}
