package domain

import (
	"jobclock/internal/errors"
)

// DeriveActive returns the running entry, if any, from a job's entry set.
// It is a pure derivation and must be called fresh on every snapshot
// rather than cached, so stale state can never drive the session.
//
// The single-running-entry invariant means at most one entry should have
// a nil End. If the store ever yields more than one (a race between two
// clients), the most-recently-started entry is returned for display
// together with a consistency error; callers must surface the anomaly,
// not swallow it.
func DeriveActive(entries []TimeEntry) (*TimeEntry, error) {
	var active *TimeEntry
	running := 0

	for i := range entries {
		if !entries[i].IsRunning() {
			continue
		}
		running++
		if active == nil || entries[i].Start.After(active.Start) {
			active = &entries[i]
		}
	}

	if running > 1 {
		err := errors.NewConsistencyError("multiple running entries for job").
			WithContext("running_count", running).
			WithContext("job_id", active.JobID)
		return active, err
	}
	return active, nil
}
