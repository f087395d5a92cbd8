package medical

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
	"github.com/ScriptedSpythoN/demoos/internal/domain/user"
)

type stubStudentRepo struct {
	known map[string]student.Student
}

func (r *stubStudentRepo) Create(_ context.Context, s student.Student) (student.Student, error) {
	return s, nil
}

func (r *stubStudentRepo) GetByID(context.Context, string) (student.Student, error) {
	return student.Student{}, student.ErrStudentNotFound
}

func (r *stubStudentRepo) GetByRollNo(_ context.Context, rollNo string) (student.Student, error) {
	s, ok := r.known[rollNo]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}

func (r *stubStudentRepo) List(context.Context, string, int) ([]student.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) Delete(context.Context, string) error { return nil }

func (r *stubStudentRepo) DepartmentAnalytics(context.Context, string) (student.DepartmentAnalytics, error) {
	return student.DepartmentAnalytics{}, nil
}

type stubUserRepo struct{}

func (stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (stubUserRepo) GetByID(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (stubUserRepo) GetByUsername(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (stubUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (stubUserRepo) CountByRole(context.Context) (map[user.Role]int64, error) {
	return map[user.Role]int64{}, nil
}

func newTestService(requests *fakeRequestRepo, jobs *fakeJobRepo, worker *Worker) *Service {
	students := &stubStudentRepo{known: map[string]student.Student{
		"CS21B001": {ID: "st-1", RollNo: "CS21B001", Name: "Asha"},
	}}
	return NewService(requests, jobs, students, stubUserRepo{}, worker, nil, testLogger())
}

func TestSubmitRejectsInvertedInterval(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), &fakeJobRepo{}, nil)

	_, err := svc.Submit(context.Background(), medical.SubmitRequest{
		StudentRollNo: "CS21B001",
		FromDate:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, medical.ErrInvalidInterval)
}

func TestSubmitRejectsUnknownStudent(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), &fakeJobRepo{}, nil)

	_, err := svc.Submit(context.Background(), medical.SubmitRequest{
		StudentRollNo: "NOPE123",
		FromDate:      time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, student.ErrStudentNotFound)
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	requests := newFakeRequestRepo()
	svc := newTestService(requests, &fakeJobRepo{}, nil)

	resp, err := svc.Submit(context.Background(), medical.SubmitRequest{
		StudentRollNo: "CS21B001",
		DepartmentID:  "dept-1",
		FromDate:      time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Reason:        "viral fever",
		DocumentPath:  "medical/doc.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, string(medical.RequestStatusPending), resp.Status)

	stored, err := requests.GetByID(context.Background(), resp.RequestID)
	require.NoError(t, err)
	assert.Equal(t, medical.RequestStatusPending, stored.Status)
}

func TestReviewRejectsInvalidAction(t *testing.T) {
	requests := newFakeRequestRepo(testRequest(medical.RequestStatusPending))
	svc := newTestService(requests, &fakeJobRepo{}, nil)

	err := svc.Review(context.Background(), medical.ReviewRequest{
		RequestID: "req-1",
		Action:    "MAYBE",
	})
	assert.ErrorIs(t, err, medical.ErrInvalidAction)
}

func TestReviewApprovalEnqueuesPipelineRun(t *testing.T) {
	req := testRequest(medical.RequestStatusPending)
	requests := newFakeRequestRepo(req)
	jobs := &fakeJobRepo{}
	p := NewProcessor(requests, jobs, &fakeApplier{}, &fakeExtractor{}, PassthroughTx, testLogger())
	worker := NewWorker(p, testLogger())
	svc := newTestService(requests, jobs, worker)

	err := svc.Review(context.Background(), medical.ReviewRequest{
		RequestID: req.ID,
		Action:    "APPROVED",
	})
	require.NoError(t, err)

	updated, err := requests.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, medical.RequestStatusApproved, updated.Status)

	require.Len(t, worker.queue, 1)
	assert.Equal(t, req.ID, <-worker.queue)
}

func TestReviewRejectionDoesNotEnqueue(t *testing.T) {
	req := testRequest(medical.RequestStatusPending)
	requests := newFakeRequestRepo(req)
	jobs := &fakeJobRepo{}
	p := NewProcessor(requests, jobs, &fakeApplier{}, &fakeExtractor{}, PassthroughTx, testLogger())
	worker := NewWorker(p, testLogger())
	svc := newTestService(requests, jobs, worker)

	remark := "certificate illegible"
	err := svc.Review(context.Background(), medical.ReviewRequest{
		RequestID: req.ID,
		Action:    "REJECTED",
		Remark:    &remark,
	})
	require.NoError(t, err)

	updated, err := requests.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, medical.RequestStatusRejected, updated.Status)
	require.NotNil(t, updated.HODRemark)
	assert.Equal(t, remark, *updated.HODRemark)
	assert.Empty(t, worker.queue)
}
