package domain

import (
	"strings"
	"time"
)

// Job represents a named bucket of work against which time is tracked.
// This is a pure domain model without database-specific concerns.
type Job struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

// NewJob creates a new Job with the given name and owner.
func NewJob(name, ownerID string) Job {
	return Job{
		Name:    name,
		OwnerID: ownerID,
	}
}

// IsValid checks if the job has valid data.
func (j Job) IsValid() bool {
	return strings.TrimSpace(j.Name) != "" && j.OwnerID != ""
}

// String returns the job name for display purposes.
func (j Job) String() string {
	return j.Name
}
