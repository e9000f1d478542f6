package sqlite

import (
	"context"

	"jobclock/internal/domain"
	"jobclock/internal/logging"
	"jobclock/internal/store"
)

// Snapshot channels are buffered; if a slow subscriber falls behind, the
// oldest queued snapshot is dropped in favor of the newest. Subscribers
// always converge on the latest state because every snapshot is complete.
const subscriptionBuffer = 16

type entrySubscription struct {
	jobID string
	ch    chan []domain.TimeEntry
}

type jobSubscription struct {
	ch chan []domain.Job
}

// SubscribeEntries streams snapshots of a job's entries, start
// descending. The current snapshot is delivered immediately; a fresh one
// follows every mutation touching the job. The returned cancel function
// releases the subscription and closes the channel.
func (s *Store) SubscribeEntries(ctx context.Context, jobID string) (<-chan []domain.TimeEntry, store.CancelFunc, error) {
	entries, err := s.ListEntries(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	sub := &entrySubscription{
		jobID: jobID,
		ch:    make(chan []domain.TimeEntry, subscriptionBuffer),
	}
	sub.ch <- entries

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.entrySubs[id] = sub
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.entrySubs[id]; ok {
			delete(s.entrySubs, id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel, nil
}

// SubscribeJobs streams snapshots of the owner's jobs, newest first.
func (s *Store) SubscribeJobs(ctx context.Context) (<-chan []domain.Job, store.CancelFunc, error) {
	jobs, err := s.ListJobs(ctx)
	if err != nil {
		return nil, nil, err
	}

	sub := &jobSubscription{
		ch: make(chan []domain.Job, subscriptionBuffer),
	}
	sub.ch <- jobs

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.jobSubs[id] = sub
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.jobSubs[id]; ok {
			delete(s.jobSubs, id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel, nil
}

// notifyEntries recomputes and pushes the snapshot for every live
// subscription on the given job. Snapshots are recomputed from scratch;
// entry sets are small and this keeps subscribers free of patch logic.
func (s *Store) notifyEntries(ctx context.Context, jobID string) {
	entries, err := s.ListEntries(ctx, jobID)
	if err != nil {
		logging.Debugf("subscription snapshot query failed for job %s: %v\n", jobID, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.entrySubs {
		if sub.jobID != jobID {
			continue
		}
		pushSnapshot(sub.ch, entries)
	}
}

// notifyJobs pushes a fresh job list to every live job subscription.
func (s *Store) notifyJobs(ctx context.Context) {
	jobs, err := s.ListJobs(ctx)
	if err != nil {
		logging.Debugf("job subscription snapshot query failed: %v\n", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.jobSubs {
		pushSnapshot(sub.ch, jobs)
	}
}

// pushSnapshot enqueues a snapshot, evicting the oldest queued one if the
// subscriber's buffer is full.
func pushSnapshot[T any](ch chan []T, snapshot []T) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
