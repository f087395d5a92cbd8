package medical

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetPendingByDepartment(ctx context.Context, departmentID string) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, remark *string) error

	// ListApprovedWithoutTerminalJob returns APPROVED requests that have
	// no COMPLETED or FAILED processing job yet. The sweep re-enqueues
	// these so a crashed run is eventually retried.
	ListApprovedWithoutTerminalJob(ctx context.Context, limit int) ([]Request, error)
}

type JobRepository interface {
	Create(ctx context.Context, job ProcessingJob) (ProcessingJob, error)
	ListByRequestID(ctx context.Context, requestID string) ([]ProcessingJob, error)
}
