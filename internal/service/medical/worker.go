package medical

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/pkg/cron"
)

// sweepBatchSize bounds how many stalled requests one sweep picks up.
const sweepBatchSize = 50

// Worker delivers approved request IDs to a pool of pipeline goroutines.
// Delivery is at-least-once: approvals enqueue directly, and a periodic
// sweep re-enqueues any approved request still missing a terminal job,
// so IDs lost to a full queue or a crash come back around. The processor
// makes duplicate deliveries harmless.
type Worker struct {
	processor *Processor
	logger    *slog.Logger

	queue chan string
	wg    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewWorker(processor *Processor, logger *slog.Logger) *Worker {
	return &Worker{
		processor: processor,
		logger:    logger,
		queue:     make(chan string, 256),
	}
}

// Start launches n pipeline goroutines draining the queue.
func (w *Worker) Start(ctx context.Context, n int) {
	w.startOnce.Do(func() {
		for i := 0; i < n; i++ {
			w.wg.Add(1)
			go w.run(ctx)
		}
	})
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case requestID, ok := <-w.queue:
			if !ok {
				return
			}
			if err := w.processor.Process(ctx, requestID); err != nil {
				w.logger.Error("medical pipeline run failed",
					slog.String("request_id", requestID),
					slog.String("error", err.Error()))
			}
		}
	}
}

// Enqueue hands a request ID to the pool without blocking. A full queue
// drops the ID; the sweep picks it up on its next pass.
func (w *Worker) Enqueue(requestID string) {
	select {
	case w.queue <- requestID:
	default:
		w.logger.Warn("medical pipeline queue full, deferring to sweep",
			slog.String("request_id", requestID))
	}
}

// RegisterSweep schedules the stalled-request sweep on the given scheduler.
func (w *Worker) RegisterSweep(scheduler *cron.Scheduler, interval time.Duration) {
	scheduler.AddJob("medical-pipeline-sweep", interval, w.Sweep)
}

// Sweep re-enqueues approved requests that never reached a terminal job.
func (w *Worker) Sweep(ctx context.Context) error {
	stalled, err := w.processor.requests.ListApprovedWithoutTerminalJob(ctx, sweepBatchSize)
	if err != nil {
		return err
	}
	for _, req := range stalled {
		w.Enqueue(req.ID)
	}
	if len(stalled) > 0 {
		w.logger.Info("re-enqueued stalled medical requests", slog.Int("count", len(stalled)))
	}
	return nil
}

// Stop closes the queue and waits for in-flight runs to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.queue)
		w.wg.Wait()
	})
}
