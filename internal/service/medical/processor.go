package medical

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/ocr"
)

// LeaveApplier flips a student's attendance to medical leave across a
// date interval. Implemented by the attendance service.
type LeaveApplier interface {
	ApplyMedicalLeave(ctx context.Context, rollNo string, from, to time.Time) (int, error)
}

// TxRunner executes fn as one atomic unit of work. The context passed to
// fn carries the transaction so repository calls join it.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// PassthroughTx runs fn directly with no transaction. Used where the
// repositories are not database-backed.
func PassthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Processor runs the verification pipeline for one approved request:
// OCR the stored document, mine two dates out of the text, compare them
// against the declared interval, and either apply the leave or record
// the failure. Every run leaves exactly one processing job row.
type Processor struct {
	requests  medical.RequestRepository
	jobs      medical.JobRepository
	applier   LeaveApplier
	extractor ocr.Extractor
	runTx     TxRunner
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProcessor(requests medical.RequestRepository, jobs medical.JobRepository, applier LeaveApplier, extractor ocr.Extractor, runTx TxRunner, logger *slog.Logger) *Processor {
	return &Processor{
		requests:  requests,
		jobs:      jobs,
		applier:   applier,
		extractor: extractor,
		runTx:     runTx,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// studentLock serializes pipeline runs per roll number so two requests
// for the same student cannot race on the same attendance records.
func (p *Processor) studentLock(rollNo string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[rollNo]
	if !ok {
		l = &sync.Mutex{}
		p.locks[rollNo] = l
	}
	return l
}

// Process runs the pipeline for requestID. Requests that are not
// APPROVED, or that already reached a terminal job, are skipped without
// error so retries and sweep re-deliveries stay harmless.
func (p *Processor) Process(ctx context.Context, requestID string) error {
	req, err := p.requests.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load medical request: %w", err)
	}
	if req.Status != medical.RequestStatusApproved {
		p.logger.Debug("skipping medical request not in APPROVED state",
			slog.String("request_id", requestID),
			slog.String("status", string(req.Status)))
		return nil
	}

	lock := p.studentLock(req.StudentRollNo)
	lock.Lock()
	defer lock.Unlock()

	done, err := p.hasTerminalJob(ctx, requestID)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	result := p.extractor.Extract(ctx, req.DocumentPath)
	extractedFrom, extractedTo := ExtractDates(result.Text)

	semStart, semEnd := SemesterBounds(req.FromDate)
	valid := ValidateDates(req.FromDate, req.ToDate, extractedFrom, extractedTo, semStart, semEnd)

	job := medical.ProcessingJob{
		RequestID:         requestID,
		OCRText:           result.Text,
		ExtractedFromDate: extractedFrom,
		ExtractedToDate:   extractedTo,
		ConfidenceScore:   result.Confidence,
		ProcessingStatus:  medical.ProcessingStatusFailed,
	}
	if valid {
		job.ProcessingStatus = medical.ProcessingStatusCompleted
	}

	var applied int
	err = p.runTx(ctx, func(txCtx context.Context) error {
		if valid {
			n, applyErr := p.applier.ApplyMedicalLeave(txCtx, req.StudentRollNo, req.FromDate, req.ToDate)
			if applyErr != nil {
				return fmt.Errorf("apply medical leave: %w", applyErr)
			}
			applied = n
		}
		if _, createErr := p.jobs.Create(txCtx, job); createErr != nil {
			return fmt.Errorf("record processing job: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if valid {
		p.logger.Info("medical leave applied",
			slog.String("request_id", requestID),
			slog.String("roll_no", req.StudentRollNo),
			slog.Int("records_updated", applied))
	} else {
		p.logger.Info("medical document verification failed",
			slog.String("request_id", requestID),
			slog.String("roll_no", req.StudentRollNo),
			slog.Bool("text_extracted", !result.Empty()))
	}
	return nil
}

func (p *Processor) hasTerminalJob(ctx context.Context, requestID string) (bool, error) {
	jobs, err := p.jobs.ListByRequestID(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("list processing jobs: %w", err)
	}
	for _, j := range jobs {
		switch j.ProcessingStatus {
		case medical.ProcessingStatusCompleted, medical.ProcessingStatusFailed:
			return true, nil
		}
	}
	return false, nil
}
