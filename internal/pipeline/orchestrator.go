package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/txtread/internal/session"
	"github.com/dgallion1/txtread/internal/settings"
)

// Orchestrator runs session events one at a time on a single goroutine.
type Orchestrator struct {
	session *session.Session
	queue   chan session.Event
	log     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewOrchestrator creates the event loop. Call Start to run it.
func NewOrchestrator(s *session.Session, queueSize int, log *slog.Logger) *Orchestrator {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Orchestrator{
		session: s,
		queue:   make(chan session.Event, queueSize),
		log:     log,
		done:    make(chan struct{}),
	}
}

// Watch turns change notifications from store into ConfigChanged events.
func (o *Orchestrator) Watch(store settings.Store) {
	store.OnChange(func(key string) {
		o.enqueue(session.ConfigChanged{Key: key})
	})
}

// Start launches the dispatch goroutine.
func (o *Orchestrator) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer close(o.done)
		for {
			select {
			case <-loopCtx.Done():
				return
			case ev := <-o.queue:
				o.dispatch(ev)
			}
		}
	}()
}

// Stop ends the loop after the event in progress, if any.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues an event from outside the loop.
func (o *Orchestrator) Submit(ev session.Event) error {
	select {
	case <-o.done:
		return fmt.Errorf("event loop stopped")
	default:
	}
	select {
	case o.queue <- ev:
		return nil
	default:
		return fmt.Errorf("event queue is full (%d)", cap(o.queue))
	}
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// enqueue may run on the loop goroutine itself (a store notification
// raised by the event being dispatched), so it must never block.
func (o *Orchestrator) enqueue(ev session.Event) {
	select {
	case o.queue <- ev:
	default:
		go func() {
			select {
			case o.queue <- ev:
			case <-o.done:
			}
		}()
	}
}

func (o *Orchestrator) dispatch(ev session.Event) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("event panicked", "event", fmt.Sprintf("%T", ev), "panic", r)
		}
	}()
	o.session.Dispatch(ev)
	o.log.Debug("event handled",
		"event", fmt.Sprintf("%T", ev),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
