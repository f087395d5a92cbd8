package medical

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/ocr"
)

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]medical.Request
}

func newFakeRequestRepo(reqs ...medical.Request) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[string]medical.Request)}
	for _, req := range reqs {
		r.requests[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) Create(_ context.Context, req medical.Request) (medical.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = fmt.Sprintf("req-%d", len(r.requests)+1)
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (medical.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return medical.Request{}, medical.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) GetPendingByDepartment(_ context.Context, departmentID string) ([]medical.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []medical.Request
	for _, req := range r.requests {
		if req.DepartmentID == departmentID && req.Status == medical.RequestStatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id string, status medical.RequestStatus, remark *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return medical.ErrRequestNotFound
	}
	req.Status = status
	req.HODRemark = remark
	r.requests[id] = req
	return nil
}

func (r *fakeRequestRepo) ListApprovedWithoutTerminalJob(_ context.Context, limit int) ([]medical.Request, error) {
	return nil, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []medical.ProcessingJob
}

func (r *fakeJobRepo) Create(_ context.Context, job medical.ProcessingJob) (medical.ProcessingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	job.ProcessedAt = time.Now()
	r.jobs = append(r.jobs, job)
	return job, nil
}

func (r *fakeJobRepo) ListByRequestID(_ context.Context, requestID string) ([]medical.ProcessingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []medical.ProcessingJob
	for _, j := range r.jobs {
		if j.RequestID == requestID {
			out = append(out, j)
		}
	}
	return out, nil
}

type applyCall struct {
	rollNo   string
	from, to time.Time
}

type fakeApplier struct {
	mu    sync.Mutex
	calls []applyCall
}

func (a *fakeApplier) ApplyMedicalLeave(_ context.Context, rollNo string, from, to time.Time) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, applyCall{rollNo: rollNo, from: from, to: to})
	return 3, nil
}

type fakeExtractor struct {
	result ocr.Result
}

func (e *fakeExtractor) Extract(context.Context, string) ocr.Result {
	return e.result
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRequest(status medical.RequestStatus) medical.Request {
	return medical.Request{
		ID:            "req-1",
		StudentRollNo: "CS21B001",
		DepartmentID:  "dept-1",
		FromDate:      time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		DocumentPath:  "medical/req-1.pdf",
		Status:        status,
	}
}

func newTestProcessor(req medical.Request, text string) (*Processor, *fakeJobRepo, *fakeApplier) {
	jobs := &fakeJobRepo{}
	applier := &fakeApplier{}
	confidence := 0.0
	if text != "" {
		confidence = 0.8
	}
	p := NewProcessor(
		newFakeRequestRepo(req),
		jobs,
		applier,
		&fakeExtractor{result: ocr.Result{Text: text, Confidence: confidence}},
		PassthroughTx,
		testLogger(),
	)
	return p, jobs, applier
}

func TestProcessorAppliesLeaveOnMatchingDocument(t *testing.T) {
	req := testRequest(medical.RequestStatusApproved)
	p, jobs, applier := newTestProcessor(req, "Rest advised from 12/03/2024 to 15/03/2024.")

	require.NoError(t, p.Process(context.Background(), req.ID))

	require.Len(t, applier.calls, 1)
	assert.Equal(t, "CS21B001", applier.calls[0].rollNo)
	assert.Equal(t, req.FromDate, applier.calls[0].from)
	assert.Equal(t, req.ToDate, applier.calls[0].to)

	require.Len(t, jobs.jobs, 1)
	job := jobs.jobs[0]
	assert.Equal(t, medical.ProcessingStatusCompleted, job.ProcessingStatus)
	assert.Equal(t, 0.8, job.ConfidenceScore)
	require.NotNil(t, job.ExtractedFromDate)
	require.NotNil(t, job.ExtractedToDate)
}

func TestProcessorFailsOnDateMismatch(t *testing.T) {
	req := testRequest(medical.RequestStatusApproved)
	p, jobs, applier := newTestProcessor(req, "Rest advised from 10/03/2024 to 15/03/2024.")

	require.NoError(t, p.Process(context.Background(), req.ID))

	assert.Empty(t, applier.calls)
	require.Len(t, jobs.jobs, 1)
	assert.Equal(t, medical.ProcessingStatusFailed, jobs.jobs[0].ProcessingStatus)
}

func TestProcessorFailsOnUnreadableDocument(t *testing.T) {
	req := testRequest(medical.RequestStatusApproved)
	p, jobs, applier := newTestProcessor(req, "")

	require.NoError(t, p.Process(context.Background(), req.ID))

	assert.Empty(t, applier.calls)
	require.Len(t, jobs.jobs, 1)
	job := jobs.jobs[0]
	assert.Equal(t, medical.ProcessingStatusFailed, job.ProcessingStatus)
	assert.Equal(t, "", job.OCRText)
	assert.Equal(t, 0.0, job.ConfidenceScore)
	assert.Nil(t, job.ExtractedFromDate)
	assert.Nil(t, job.ExtractedToDate)
}

func TestProcessorSkipsNonApprovedRequest(t *testing.T) {
	for _, status := range []medical.RequestStatus{medical.RequestStatusPending, medical.RequestStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			req := testRequest(status)
			p, jobs, applier := newTestProcessor(req, "Rest advised from 12/03/2024 to 15/03/2024.")

			require.NoError(t, p.Process(context.Background(), req.ID))

			assert.Empty(t, applier.calls)
			assert.Empty(t, jobs.jobs)
		})
	}
}

func TestProcessorIdempotentAfterTerminalJob(t *testing.T) {
	req := testRequest(medical.RequestStatusApproved)
	p, jobs, applier := newTestProcessor(req, "Rest advised from 12/03/2024 to 15/03/2024.")

	require.NoError(t, p.Process(context.Background(), req.ID))
	require.NoError(t, p.Process(context.Background(), req.ID))

	assert.Len(t, applier.calls, 1)
	assert.Len(t, jobs.jobs, 1)
}

func TestProcessorConcurrentDeliveriesProduceOneJob(t *testing.T) {
	req := testRequest(medical.RequestStatusApproved)
	p, jobs, applier := newTestProcessor(req, "Rest advised from 12/03/2024 to 15/03/2024.")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Process(context.Background(), req.ID))
		}()
	}
	wg.Wait()

	assert.Len(t, applier.calls, 1)
	assert.Len(t, jobs.jobs, 1)
}

func TestProcessorUnknownRequest(t *testing.T) {
	p, jobs, applier := newTestProcessor(testRequest(medical.RequestStatusApproved), "whatever")

	err := p.Process(context.Background(), "missing")
	require.ErrorIs(t, err, medical.ErrRequestNotFound)
	assert.Empty(t, applier.calls)
	assert.Empty(t, jobs.jobs)
}
