package ratelimit

import (
	"context"
	"sync"
	"time"
)

// record is one client's window state. A record whose window has lapsed is
// treated as absent and replaced on the next request.
type record struct {
	count       int
	windowStart time.Time
}

// MemoryStore is the in-process fixed-window store. A single mutex guards
// the whole table; throughput here is a handful of requests per hour, so
// per-key locking would be complexity without benefit.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	cfg     Config

	// now is swappable for tests.
	now func() time.Time

	sweepInterval time.Duration
	stopSweep     chan struct{}
	stopOnce      sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often lapsed records are removed. The sweep
// bounds memory growth from one-off visitors; without it the table only
// shrinks by overwrite. Set to 0 to disable (tests).
func WithSweepInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.sweepInterval = interval
	}
}

// WithClock replaces the time source. Tests use this to advance the window
// without sleeping.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.now = now
	}
}

// NewMemoryStore creates an in-memory store and starts its sweep goroutine
// unless disabled.
func NewMemoryStore(cfg Config, opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		records:       make(map[string]*record),
		cfg:           cfg,
		now:           time.Now,
		sweepInterval: 10 * time.Minute,
		stopSweep:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.sweepInterval > 0 {
		go ms.sweep()
	}
	return ms
}

// CheckAndRecord implements Store. Holding the table mutex across the
// whole check-and-increment keeps it atomic per key.
func (ms *MemoryStore) CheckAndRecord(_ context.Context, key string) (Result, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	rec, ok := ms.records[key]

	if !ok || now.Sub(rec.windowStart) > ms.cfg.Window {
		rec = &record{count: 1, windowStart: now}
		ms.records[key] = rec
		return ms.result(rec, true), nil
	}

	if rec.count >= ms.cfg.Max {
		// Rejected requests do not advance the count or the window.
		return ms.result(rec, false), nil
	}

	rec.count++
	return ms.result(rec, true), nil
}

func (ms *MemoryStore) result(rec *record, allowed bool) Result {
	remaining := ms.cfg.Max - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   rec.windowStart.Add(ms.cfg.Window),
	}
}

// Close stops the sweep goroutine.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() {
		close(ms.stopSweep)
	})
}

func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(ms.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeLapsed()
		case <-ms.stopSweep:
			return
		}
	}
}

func (ms *MemoryStore) removeLapsed() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, rec := range ms.records {
		if now.Sub(rec.windowStart) > ms.cfg.Window {
			delete(ms.records, key)
		}
	}
}
