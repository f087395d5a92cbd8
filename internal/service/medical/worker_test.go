package medical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
)

type sweepRequestRepo struct {
	fakeRequestRepo
	stalled []medical.Request
}

func (r *sweepRequestRepo) ListApprovedWithoutTerminalJob(_ context.Context, limit int) ([]medical.Request, error) {
	if len(r.stalled) > limit {
		return r.stalled[:limit], nil
	}
	return r.stalled, nil
}

func TestWorkerSweepReenqueuesStalledRequests(t *testing.T) {
	repo := &sweepRequestRepo{
		stalled: []medical.Request{{ID: "req-1"}, {ID: "req-2"}},
	}
	p := NewProcessor(repo, &fakeJobRepo{}, &fakeApplier{}, &fakeExtractor{}, PassthroughTx, testLogger())
	w := NewWorker(p, testLogger())

	require.NoError(t, w.Sweep(context.Background()))

	assert.Len(t, w.queue, 2)
	assert.Equal(t, "req-1", <-w.queue)
	assert.Equal(t, "req-2", <-w.queue)
}

func TestWorkerEnqueueDropsWhenFull(t *testing.T) {
	p := NewProcessor(newFakeRequestRepo(), &fakeJobRepo{}, &fakeApplier{}, &fakeExtractor{}, PassthroughTx, testLogger())
	w := NewWorker(p, testLogger())
	w.queue = make(chan string, 1)

	w.Enqueue("req-1")
	w.Enqueue("req-2") // dropped, sweep will pick it up

	assert.Len(t, w.queue, 1)
	assert.Equal(t, "req-1", <-w.queue)
}
