package medical

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
	"github.com/ScriptedSpythoN/demoos/internal/domain/user"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/email"
)

const dateDisplayLayout = "02/01/2006"

// Service handles the request lifecycle around the pipeline: submission,
// HOD review, and history reads. Approval hands the request to the worker.
type Service struct {
	requests medical.RequestRepository
	jobs     medical.JobRepository
	students student.StudentRepository
	users    user.UserRepository
	worker   *Worker
	email    email.EmailService
	logger   *slog.Logger
}

func NewService(requests medical.RequestRepository, jobs medical.JobRepository, students student.StudentRepository, users user.UserRepository, worker *Worker, emailSvc email.EmailService, logger *slog.Logger) *Service {
	return &Service{
		requests: requests,
		jobs:     jobs,
		students: students,
		users:    users,
		worker:   worker,
		email:    emailSvc,
		logger:   logger,
	}
}

// Submit files a new leave request in PENDING state.
func (s *Service) Submit(ctx context.Context, req medical.SubmitRequest) (medical.SubmitResponse, error) {
	if req.ToDate.Before(req.FromDate) {
		return medical.SubmitResponse{}, medical.ErrInvalidInterval
	}
	if _, err := s.students.GetByRollNo(ctx, req.StudentRollNo); err != nil {
		return medical.SubmitResponse{}, fmt.Errorf("resolve student: %w", err)
	}

	created, err := s.requests.Create(ctx, medical.Request{
		StudentRollNo: req.StudentRollNo,
		DepartmentID:  req.DepartmentID,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		Reason:        req.Reason,
		DocumentPath:  req.DocumentPath,
		Status:        medical.RequestStatusPending,
	})
	if err != nil {
		return medical.SubmitResponse{}, fmt.Errorf("create medical request: %w", err)
	}

	s.logger.Info("medical request submitted",
		slog.String("request_id", created.ID),
		slog.String("roll_no", created.StudentRollNo))

	return medical.SubmitResponse{RequestID: created.ID, Status: string(created.Status)}, nil
}

// Review records the HOD's decision. APPROVED requests are enqueued for
// the verification pipeline; both outcomes notify the student by email
// when an address is on file.
func (s *Service) Review(ctx context.Context, req medical.ReviewRequest) error {
	status := medical.RequestStatus(req.Action)
	if status != medical.RequestStatusApproved && status != medical.RequestStatusRejected {
		return medical.ErrInvalidAction
	}

	target, err := s.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}

	if err := s.requests.UpdateStatus(ctx, req.RequestID, status, req.Remark); err != nil {
		return fmt.Errorf("update medical request status: %w", err)
	}

	s.logger.Info("medical request reviewed",
		slog.String("request_id", req.RequestID),
		slog.String("action", req.Action))

	if status == medical.RequestStatusApproved {
		s.worker.Enqueue(req.RequestID)
	}

	s.notifyReviewed(ctx, target, status, req.Remark)
	return nil
}

func (s *Service) notifyReviewed(ctx context.Context, req medical.Request, status medical.RequestStatus, remark *string) {
	if s.email == nil {
		return
	}
	st, err := s.students.GetByRollNo(ctx, req.StudentRollNo)
	if err != nil || st.UserID == nil {
		return
	}
	u, err := s.users.GetByID(ctx, *st.UserID)
	if err != nil || u.Email == nil {
		return
	}

	remarkText := ""
	if remark != nil {
		remarkText = *remark
	}
	go func(to, name string) {
		if sendErr := s.email.SendMedicalReviewed(to, name, string(status), remarkText,
			req.FromDate.Format(dateDisplayLayout), req.ToDate.Format(dateDisplayLayout)); sendErr != nil {
			s.logger.Error("medical review notification failed",
				slog.String("request_id", req.ID),
				slog.String("error", sendErr.Error()))
		}
	}(*u.Email, st.Name)
}

// PendingByDepartment lists requests awaiting review for the HOD queue.
func (s *Service) PendingByDepartment(ctx context.Context, departmentID string) ([]medical.ListItem, error) {
	pending, err := s.requests.GetPendingByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list pending medical requests: %w", err)
	}
	items := make([]medical.ListItem, 0, len(pending))
	for _, r := range pending {
		items = append(items, toListItem(r))
	}
	return items, nil
}

// Jobs returns the processing history for one request, newest first.
func (s *Service) Jobs(ctx context.Context, requestID string) ([]medical.JobItem, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list processing jobs: %w", err)
	}
	items := make([]medical.JobItem, 0, len(jobs))
	for _, j := range jobs {
		item := medical.JobItem{
			JobID:            j.ID,
			ProcessingStatus: string(j.ProcessingStatus),
			ConfidenceScore:  j.ConfidenceScore,
			ProcessedAt:      j.ProcessedAt.Format(dateDisplayLayout),
		}
		if j.ExtractedFromDate != nil {
			v := j.ExtractedFromDate.Format(dateDisplayLayout)
			item.ExtractedFromDate = &v
		}
		if j.ExtractedToDate != nil {
			v := j.ExtractedToDate.Format(dateDisplayLayout)
			item.ExtractedToDate = &v
		}
		items = append(items, item)
	}
	return items, nil
}

func toListItem(r medical.Request) medical.ListItem {
	return medical.ListItem{
		RequestID:     r.ID,
		StudentRollNo: r.StudentRollNo,
		FromDate:      r.FromDate.Format(dateDisplayLayout),
		ToDate:        r.ToDate.Format(dateDisplayLayout),
		Reason:        r.Reason,
		Status:        string(r.Status),
		HODRemark:     r.HODRemark,
	}
}
