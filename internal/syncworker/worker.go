package syncworker

import (
	"context"
	"log"
	"time"
)

// Source is the pending-work side of the data manager: a sync pass plus a
// wake-up channel that fires when new pending records exist.
type Source interface {
	SyncPending(ctx context.Context) (int, error)
	Notify() <-chan struct{}
}

// Worker pushes pending history and lead records to the remote store in the
// background. Failed passes are not retried immediately; the record stays
// pending and the next tick picks it up.
type Worker struct {
	source   Source
	interval time.Duration
}

func New(source Source, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{source: source, interval: interval}
}

// Run blocks until ctx is cancelled. One pass runs at startup so records
// left over from a previous process go out without waiting a full interval.
func (w *Worker) Run(ctx context.Context) {
	log.Printf("[syncworker][run] started interval=%s", w.interval)

	w.pass(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[syncworker][run] stopping: %v", ctx.Err())
			return
		case <-ticker.C:
			w.pass(ctx)
		case <-w.source.Notify():
			w.pass(ctx)
		}
	}
}

func (w *Worker) pass(ctx context.Context) {
	synced, err := w.source.SyncPending(ctx)
	if err != nil {
		log.Printf("[syncworker][pass] sync failed err=%v", err)
		return
	}
	if synced > 0 {
		log.Printf("[syncworker][pass] synced=%d", synced)
	}
}
