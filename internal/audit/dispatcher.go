package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Event struct {
	ID       string
	UserID   *uint
	Action   string
	Entity   string
	EntityID string
	Metadata any
	At       time.Time

	// ctx carries the trace of the request that produced the event.
	ctx context.Context
}

// Sink persists or forwards audit events.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// queueSize is per sink.
const queueSize = 1024

// Dispatcher fans events out to sinks. Every sink has its own queue and
// worker, so a stalled broker never holds back the database trail.
type Dispatcher struct {
	log     *zap.Logger
	workers []*sinkWorker
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type sinkWorker struct {
	sink  Sink
	name  string
	queue chan Event
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{log: log}

	for _, s := range sinks {
		w := &sinkWorker{
			sink:  s,
			name:  fmt.Sprintf("%T", s),
			queue: make(chan Event, queueSize),
		}
		d.workers = append(d.workers, w)

		d.wg.Add(1)
		go d.run(w)
	}
	return d
}

func (d *Dispatcher) run(w *sinkWorker) {
	defer d.wg.Done()

	for ev := range w.queue {
		if err := w.sink.Write(ev.ctx, ev); err != nil {
			d.log.Warn("audit sink failed",
				zap.String("sink", w.name),
				zap.String("action", ev.Action),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
		}
	}
}

// Dispatch queues ev for every sink without blocking the request. A sink
// whose queue is full loses the event; the API never fails because of audit.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	ev.ctx = context.WithoutCancel(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	for _, w := range d.workers {
		select {
		case w.queue <- ev:
		default:
			d.log.Warn("audit queue full, dropping event",
				zap.String("sink", w.name),
				zap.String("action", ev.Action),
			)
		}
	}
}

// Close stops accepting events and waits for every queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, w := range d.workers {
			close(w.queue)
		}
	}
	d.mu.Unlock()

	d.wg.Wait()
}
