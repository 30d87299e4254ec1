// Package debounce coalesces bursts of calls into a single call made once
// the caller has been quiet for a fixed delay.
package debounce

import (
	"sync"
	"time"

	"github.com/julianstephens/agenda/internal/ui"
)

type config struct {
	scheduler ui.Scheduler
}

type Option func(*config)

// WithScheduler replaces the runtime timers, mostly for tests.
func WithScheduler(s ui.Scheduler) Option {
	return func(c *config) { c.scheduler = s }
}

// Debouncer delays fn until delay has passed without another Call. Only the
// argument of the last Call is delivered.
type Debouncer[T any] struct {
	fn        func(T)
	delay     time.Duration
	scheduler ui.Scheduler

	mu      sync.Mutex
	timer   ui.Timer
	latest  T
	pending bool
	gen     uint64
}

// New returns a Debouncer for fn.
func New[T any](fn func(T), delay time.Duration, opts ...Option) *Debouncer[T] {
	cfg := config{scheduler: ui.SystemScheduler{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Debouncer[T]{fn: fn, delay: delay, scheduler: cfg.scheduler}
}

// Func is a shorthand returning only the debounced call.
func Func[T any](fn func(T), delay time.Duration, opts ...Option) func(T) {
	return New(fn, delay, opts...).Call
}

// Call cancels any pending call and schedules fn(v) after the delay.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.latest = v
	d.pending = true
	gen := d.gen
	d.timer = d.scheduler.ScheduleTimer(d.delay, func() { d.fire(gen) })
}

// Stop drops the pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Flush runs the pending call now. It reports false if nothing was pending.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.latest
	d.cancelLocked()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A timer that fired while Call or Stop was replacing it is stale.
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.latest
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.gen++
	var zero T
	d.latest = zero
}
