package domain

import (
	"time"
)

// TimeEntry represents one interval of tracked time. An entry with a nil
// End is running; at most one running entry may exist per job at any time.
type TimeEntry struct {
	ID        string
	JobID     string
	OwnerID   string
	Start     time.Time
	End       *time.Time
	CreatedAt time.Time
}

// NewTimeEntry creates a new running TimeEntry for the given job.
func NewTimeEntry(jobID, ownerID string, start time.Time) TimeEntry {
	return TimeEntry{
		JobID:   jobID,
		OwnerID: ownerID,
		Start:   start,
	}
}

// IsRunning returns true if the time entry is currently running (no end time).
func (te TimeEntry) IsRunning() bool {
	return te.End == nil
}

// Stop returns a copy of the entry closed at the given end time.
func (te TimeEntry) Stop(end time.Time) TimeEntry {
	te.End = &end
	return te
}

// Duration returns the duration of the time entry relative to now.
// A running entry contributes duration up to now.
func (te TimeEntry) Duration(now time.Time) time.Duration {
	if te.End == nil {
		return now.Sub(te.Start)
	}
	return te.End.Sub(te.Start)
}

// IsValid checks if the time entry has valid data. Closed entries must
// have a strictly positive duration.
func (te TimeEntry) IsValid() bool {
	if te.JobID == "" || te.OwnerID == "" {
		return false
	}
	if te.Start.IsZero() {
		return false
	}
	if te.End != nil && !te.End.After(te.Start) {
		return false
	}
	return true
}
