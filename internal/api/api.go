// Package api wires the store, validator, and aggregator into the
// operation surface the CLI and report path consume.
package api

import (
	"context"
	"time"

	"jobclock/internal/aggregate"
	"jobclock/internal/domain"
	"jobclock/internal/errors"
	"jobclock/internal/logging"
	"jobclock/internal/store"
	"jobclock/internal/timefmt"
	"jobclock/internal/validation"
)

// API defines the interface for all job and time entry operations.
type API interface {
	// Job operations
	CreateJob(ctx context.Context, name string) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	RenameJob(ctx context.Context, id string, name string) error
	DeleteJob(ctx context.Context, id string) error
	FindJobByName(ctx context.Context, name string) (*domain.Job, error)

	// Timer operations
	StartTimer(ctx context.Context, jobID string) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, jobID string) (*domain.TimeEntry, error)
	ActiveEntry(ctx context.Context, jobID string) (*domain.TimeEntry, error)

	// Manual entries
	AddManualEntry(ctx context.Context, jobID string, startInput, endInput string, baseDate time.Time) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	// Aggregation
	DayBuckets(ctx context.Context, jobID string) ([]aggregate.DayBucket, error)
	WeekBuckets(ctx context.Context, jobID string) ([]aggregate.WeekBucket, error)
}

type apiImpl struct {
	store     store.Store
	validator *validation.ManualEntryValidator
	now       func() time.Time
}

// New creates a new API instance bound to the given store and time format.
func New(st store.Store, format timefmt.Format) API {
	return &apiImpl{
		store:     st,
		validator: validation.NewManualEntryValidator(format),
		now:       time.Now,
	}
}

func (a *apiImpl) CreateJob(ctx context.Context, name string) (*domain.Job, error) {
	return a.store.CreateJob(ctx, name)
}

func (a *apiImpl) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return a.store.ListJobs(ctx)
}

func (a *apiImpl) RenameJob(ctx context.Context, id string, name string) error {
	return a.store.RenameJob(ctx, id, name)
}

// DeleteJob removes the job and all of its entries atomically.
func (a *apiImpl) DeleteJob(ctx context.Context, id string) error {
	return a.store.DeleteJobCascade(ctx, id)
}

// FindJobByName resolves a job by exact name match.
func (a *apiImpl) FindJobByName(ctx context.Context, name string) (*domain.Job, error) {
	jobs, err := a.store.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].Name == name {
			return &jobs[i], nil
		}
	}
	return nil, errors.NewNotFoundError("job", name)
}

// StartTimer creates a running entry for the job. The precondition is
// re-derived from the current entry set before the write; the store's
// transactional check is the backstop against races.
func (a *apiImpl) StartTimer(ctx context.Context, jobID string) (*domain.TimeEntry, error) {
	active, err := a.ActiveEntry(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, errors.NewPreconditionError("a timer is already running for this job").
			WithContext("job_id", jobID)
	}
	return a.store.CreateEntry(ctx, jobID, a.now(), nil)
}

// StopTimer closes the job's running entry. With no running entry it is
// a precondition error and mutates nothing.
func (a *apiImpl) StopTimer(ctx context.Context, jobID string) (*domain.TimeEntry, error) {
	active, err := a.ActiveEntry(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewPreconditionError("no timer is running for this job").
			WithContext("job_id", jobID)
	}

	end := a.now()
	if err := a.store.CloseEntry(ctx, active.ID, end); err != nil {
		return nil, err
	}
	stopped := active.Stop(end)
	return &stopped, nil
}

// ActiveEntry derives the running entry from the current entry set. A
// consistency anomaly (two running entries) is flagged, and the
// most-recently-started entry is returned as the deterministic fallback
// for display.
func (a *apiImpl) ActiveEntry(ctx context.Context, jobID string) (*domain.TimeEntry, error) {
	entries, err := a.store.ListEntries(ctx, jobID)
	if err != nil {
		return nil, err
	}
	active, derr := domain.DeriveActive(entries)
	if derr != nil {
		logging.Debugf("api: %v\n", derr)
	}
	return active, nil
}

// AddManualEntry validates and normalizes user-supplied start/end input
// against the base date, then persists the closed interval. Validation
// failures reject the entry before any write.
func (a *apiImpl) AddManualEntry(ctx context.Context, jobID string, startInput, endInput string, baseDate time.Time) (*domain.TimeEntry, error) {
	start, end, err := a.validator.NormalizeInterval(startInput, endInput, baseDate)
	if err != nil {
		return nil, err
	}
	return a.store.CreateEntry(ctx, jobID, start, &end)
}

func (a *apiImpl) DeleteEntry(ctx context.Context, id string) error {
	return a.store.DeleteEntry(ctx, id)
}

// DayBuckets groups the job's entries into calendar days, newest first.
func (a *apiImpl) DayBuckets(ctx context.Context, jobID string) ([]aggregate.DayBucket, error) {
	entries, err := a.store.ListEntries(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return aggregate.GroupByDay(entries), nil
}

// WeekBuckets groups the job's days into Sunday-aligned weeks for the
// report path.
func (a *apiImpl) WeekBuckets(ctx context.Context, jobID string) ([]aggregate.WeekBucket, error) {
	days, err := a.DayBuckets(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return aggregate.GroupByWeek(days), nil
}
