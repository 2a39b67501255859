// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{CommandFailedEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	h, _ := redkv.New(redkv.Options{
//	    URL:       "redis://localhost:6379/0",
//	    Namespace: "sessions",
//	    Hooks:     hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/redkv"
)

// Hooks runs an inner redkv.Hooks on background workers.
// Events are dropped when the queue is full.
type Hooks struct {
	inner   redkv.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards closed against sends on a closed q
	closed  bool
	dropped atomic.Uint64
}

var _ redkv.Hooks = (*Hooks)(nil)

func New(inner redkv.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) ExpireFailed(k string, ttl time.Duration, err error) {
	h.try(func() { h.inner.ExpireFailed(k, ttl, err) })
}
func (h *Hooks) CommandFailed(op, k string, kind redkv.Kind, err error) {
	h.try(func() { h.inner.CommandFailed(op, k, kind, err) })
}
