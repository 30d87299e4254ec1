// Package alerts keeps the stack of transient notification banners. Each
// banner is shown, switched to its exit phase once the display window
// elapses, and removed after the exit animation. Banners never wait on each
// other.
package alerts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/ui"
)

// ErrClosed is returned by Show after Close.
var ErrClosed = errors.New("notifier closed")

type Kind = ui.Kind

const (
	KindSuccess = ui.KindSuccess
	KindError   = ui.KindError
)

// ParseKind maps "error" to KindError and anything else to KindSuccess.
func ParseKind(s string) Kind {
	return ui.ParseKind(s)
}

// Handle tracks one shown notification and its pending timer.
type Handle struct {
	notification ui.Notification
	timer        ui.Timer
}

// ID returns the notification ID.
func (h *Handle) ID() string {
	return h.notification.ID
}

type Option func(*Notifier)

// WithDisplayDuration sets how long a notification stays before exiting.
func WithDisplayDuration(d time.Duration) Option {
	return func(n *Notifier) { n.display = d }
}

// WithExitDuration sets the length of the exit animation.
func WithExitDuration(d time.Duration) Option {
	return func(n *Notifier) { n.exit = d }
}

// WithClock sets the source of CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// Notifier owns the ordered list of active notifications.
type Notifier struct {
	surface   ui.Surface
	scheduler ui.Scheduler
	display   time.Duration
	exit      time.Duration
	now       func() time.Time

	mu      sync.Mutex
	active  []*Handle
	changed chan struct{}
	closed  bool
}

// New returns a Notifier drawing on surface and timing with scheduler.
func New(surface ui.Surface, scheduler ui.Scheduler, opts ...Option) *Notifier {
	n := &Notifier{
		surface:   surface,
		scheduler: scheduler,
		display:   constants.AlertDisplayDuration,
		exit:      constants.AlertExitDuration,
		now:       time.Now,
		changed:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show displays message and schedules its exit and removal.
func (n *Notifier) Show(message string, kind Kind) (*Handle, error) {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	note := ui.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      ParseKind(string(kind)),
		Phase:     ui.PhaseVisible,
		CreatedAt: n.now(),
	}
	if err := n.surface.CreateNotification(note); err != nil {
		return nil, fmt.Errorf("show notification: %w", err)
	}

	h := &Handle{notification: note}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		// Close ran while the surface call was in flight.
		go n.removeFromSurface(note.ID)
		return nil, ErrClosed
	}
	n.active = append(n.active, h)
	h.timer = n.scheduler.ScheduleTimer(n.display, func() { n.beginExit(note.ID) })
	n.signal()

	logger.Debug("notification shown", "id", note.ID, "kind", note.Kind)
	return h, nil
}

// Dismiss removes a notification right away, as the close button does.
// It reports false if id is not active.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	h := n.take(id)
	n.mu.Unlock()
	if h == nil {
		return false
	}

	n.removeFromSurface(id)
	logger.Debug("notification dismissed", "id", id)
	return true
}

// Active returns the active notifications, oldest first.
func (n *Notifier) Active() []ui.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ui.Notification, len(n.active))
	for i, h := range n.active {
		out[i] = h.notification
	}
	return out
}

// Wait blocks until no notification is active or ctx is done.
func (n *Notifier) Wait(ctx context.Context) error {
	for {
		n.mu.Lock()
		if len(n.active) == 0 {
			n.mu.Unlock()
			return nil
		}
		changed := n.changed
		n.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// Close cancels every pending timer and removes all notifications from the
// surface. Show fails with ErrClosed afterwards.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	handles := n.active
	n.active = nil
	for _, h := range handles {
		h.timer.Stop()
	}
	n.signal()
	n.mu.Unlock()

	var errs []error
	for _, h := range handles {
		if err := n.surface.RemoveNotification(h.ID()); err != nil {
			errs = append(errs, fmt.Errorf("remove notification %s: %w", h.ID(), err))
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) beginExit(id string) {
	n.mu.Lock()
	i := n.index(id)
	if i < 0 {
		n.mu.Unlock()
		return
	}
	n.active[i].notification.Phase = ui.PhaseExiting
	n.signal()
	n.mu.Unlock()

	if err := n.surface.ExitNotification(id); err != nil {
		logger.Warn("failed to start notification exit", "id", id, "error", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	// Dismissed while the surface was animating.
	if i := n.index(id); i >= 0 {
		n.active[i].timer = n.scheduler.ScheduleTimer(n.exit, func() { n.expire(id) })
	}
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	h := n.take(id)
	n.mu.Unlock()
	if h == nil {
		return
	}
	n.removeFromSurface(id)
}

func (n *Notifier) removeFromSurface(id string) {
	if err := n.surface.RemoveNotification(id); err != nil {
		logger.Warn("failed to remove notification", "id", id, "error", err)
	}
}

// take unlinks id from the stack and stops its timer. Callers hold mu.
func (n *Notifier) take(id string) *Handle {
	i := n.index(id)
	if i < 0 {
		return nil
	}
	h := n.active[i]
	h.timer.Stop()
	n.active = slices.Delete(n.active, i, i+1)
	n.signal()
	return h
}

func (n *Notifier) index(id string) int {
	return slices.IndexFunc(n.active, func(h *Handle) bool { return h.ID() == id })
}

// signal wakes Wait callers. Callers hold mu.
func (n *Notifier) signal() {
	close(n.changed)
	n.changed = make(chan struct{})
}
