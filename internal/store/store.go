// Package store defines the abstract realtime collection of jobs and
// time entries. Implementations provide create/update/delete operations
// plus subscribe-for-changes semantics: a subscription delivers a fresh,
// complete snapshot after every mutation, and the returned cancel
// function must be called to release it.
package store

import (
	"context"
	"time"

	"jobclock/internal/domain"
)

// CancelFunc releases a subscription. Calling it more than once is safe.
type CancelFunc func()

// Store is the collection the session controller and aggregator read
// from. All queries are scoped to the owner the store was opened for.
type Store interface {
	// Job operations
	CreateJob(ctx context.Context, name string) (*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	RenameJob(ctx context.Context, id string, name string) error
	// DeleteJobCascade deletes a job and every time entry referencing it
	// as a single atomic batch. On failure both the job and its entries
	// remain untouched.
	DeleteJobCascade(ctx context.Context, id string) error
	// SubscribeJobs streams snapshots of the owner's jobs, newest first.
	SubscribeJobs(ctx context.Context) (<-chan []domain.Job, CancelFunc, error)

	// Entry operations
	// CreateEntry persists a new entry. A nil end creates a running
	// entry and is rejected with a precondition error if the job already
	// has one; a non-nil end must be strictly after start.
	CreateEntry(ctx context.Context, jobID string, start time.Time, end *time.Time) (*domain.TimeEntry, error)
	// CloseEntry sets the end time of a running entry.
	CloseEntry(ctx context.Context, id string, end time.Time) error
	DeleteEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context, jobID string) ([]domain.TimeEntry, error)
	// SubscribeEntries streams snapshots of a job's entries ordered by
	// start descending.
	SubscribeEntries(ctx context.Context, jobID string) (<-chan []domain.TimeEntry, CancelFunc, error)

	Close() error
}
