// Package session manages the per-job timer state machine: Idle with no
// running entry, Running with exactly one. The controller is driven by
// store snapshots (the authoritative answer to "is a timer running" is
// always the latest snapshot, never a locally cached flag) and exposes a
// 1Hz elapsed-seconds tick for display while Running.
package session

import (
	"context"
	"sync"
	"time"

	"jobclock/internal/domain"
	"jobclock/internal/errors"
	"jobclock/internal/logging"
	"jobclock/internal/store"
	"jobclock/internal/timefmt"
)

// TickFunc receives the recomputed elapsed seconds of the active entry,
// roughly once per tick interval, plus once immediately when ticking
// starts. It is called from the controller's tick goroutine.
type TickFunc func(elapsedSeconds int)

// Controller supervises the timer session of a single job.
type Controller struct {
	store    store.Store
	jobID    string
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	onTick   TickFunc

	mu       sync.Mutex
	entries  []domain.TimeEntry
	active   *domain.TimeEntry
	starting bool          // in-flight Start guard against rapid double-taps
	tickStop chan struct{} // non-nil while a tick loop is live
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval overrides the 1-second tick period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithClock overrides the controller's clock.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithNotifier sets the timer-event collaborator.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// NewController creates a controller for one job. onTick may be nil when
// no live display is attached.
func NewController(st store.Store, jobID string, onTick TickFunc, opts ...Option) *Controller {
	c := &Controller{
		store:    st,
		jobID:    jobID,
		notifier: NopNotifier{},
		interval: time.Second,
		now:      time.Now,
		onTick:   onTick,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run subscribes to the job's entries and applies snapshots until ctx is
// cancelled. It blocks; run it on its own goroutine when a caller needs
// to keep working. On return the subscription and any live tick are
// cancelled; the running entry itself persists in the store and resumes
// ticking when a new controller attaches.
func (c *Controller) Run(ctx context.Context) error {
	snapshots, cancel, err := c.store.SubscribeEntries(ctx, c.jobID)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.cancelTick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshot, ok := <-snapshots:
			if !ok {
				return nil
			}
			c.applySnapshot(snapshot)
		}
	}
}

// applySnapshot replaces the controller's view of the entry set and
// re-derives the active entry from scratch. The tick is cancelled, not
// merely ignored, whenever the session goes Idle or the active entry's
// identity changes (job switched, entry deleted, two-client race).
func (c *Controller) applySnapshot(entries []domain.TimeEntry) {
	active, err := domain.DeriveActive(entries)
	if err != nil {
		// Data-consistency anomaly: more than one running entry. The
		// most recent one drives the display; the anomaly is surfaced.
		logging.Debugf("session: %v\n", err)
	}

	c.mu.Lock()
	previous := c.active
	c.entries = entries
	c.active = active
	if active != nil {
		c.starting = false
	}

	switch {
	case active == nil:
		c.stopTickLocked()
		c.mu.Unlock()
		if previous != nil {
			c.notifier.TimerStopped(previous.JobID, previous.ID)
		}
	case previous == nil || previous.ID != active.ID:
		c.stopTickLocked()
		c.startTickLocked(*active)
		c.mu.Unlock()
	default:
		c.mu.Unlock()
	}
}

// Active returns the running entry from the latest snapshot, if any.
func (c *Controller) Active() *domain.TimeEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	entry := *c.active
	return &entry
}

// Start begins a timer for the controller's job. The no-running-entry
// precondition is re-derived from the latest snapshot; an in-flight
// guard additionally blocks a second Start before the first write's
// snapshot arrives. The store's transactional check is the backstop.
func (c *Controller) Start(ctx context.Context) (*domain.TimeEntry, error) {
	c.mu.Lock()
	if c.active != nil {
		c.mu.Unlock()
		return nil, errors.NewPreconditionError("a timer is already running for this job").
			WithContext("job_id", c.jobID)
	}
	if c.starting {
		c.mu.Unlock()
		return nil, errors.NewPreconditionError("a timer start is already in flight").
			WithContext("job_id", c.jobID)
	}
	c.starting = true
	c.mu.Unlock()

	startedAt := c.now()
	entry, err := c.store.CreateEntry(ctx, c.jobID, startedAt, nil)
	if err != nil {
		c.mu.Lock()
		c.starting = false
		c.mu.Unlock()
		return nil, err
	}

	c.notifier.TimerStarted(entry.JobID, entry.ID, entry.Start)
	return entry, nil
}

// Stop closes the running entry. Stopping with no running entry is a
// precondition error and mutates nothing.
func (c *Controller) Stop(ctx context.Context) error {
	active := c.Active()
	if active == nil {
		return errors.NewPreconditionError("no timer is running for this job").
			WithContext("job_id", c.jobID)
	}

	if err := c.store.CloseEntry(ctx, active.ID, c.now()); err != nil {
		return err
	}
	// The Idle transition (and the TimerStopped event) follows from the
	// next snapshot, which is the authoritative state.
	return nil
}

// Elapsed returns the whole seconds the active entry has been running,
// or 0 when Idle.
func (c *Controller) Elapsed() int {
	active := c.Active()
	if active == nil {
		return 0
	}
	return timefmt.ElapsedSeconds(c.now(), active.Start)
}

// startTickLocked launches the tick loop for the given active entry.
// When the entry's start is still in the future (a server-assigned
// timestamp ahead of the local clock), no tick fires until the start is
// reached; the display stays at zero instead of going negative.
func (c *Controller) startTickLocked(entry domain.TimeEntry) {
	if c.onTick == nil {
		return
	}

	stop := make(chan struct{})
	c.tickStop = stop

	go func() {
		if wait := entry.Start.Sub(c.now()); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		c.onTick(timefmt.ElapsedSeconds(c.now(), entry.Start))

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.onTick(timefmt.ElapsedSeconds(c.now(), entry.Start))
			}
		}
	}()
}

func (c *Controller) stopTickLocked() {
	if c.tickStop != nil {
		close(c.tickStop)
		c.tickStop = nil
	}
}

func (c *Controller) cancelTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTickLocked()
}
