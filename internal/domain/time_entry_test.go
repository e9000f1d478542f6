package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeEntry_IsRunning(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	entry := NewTimeEntry("job-1", "owner-1", start)
	assert.True(t, entry.IsRunning())

	stopped := entry.Stop(start.Add(time.Hour))
	assert.False(t, stopped.IsRunning())
	// Stop returns a copy; the original is untouched.
	assert.True(t, entry.IsRunning())
}

func TestTimeEntry_Duration(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	now := start.Add(90 * time.Minute)

	running := NewTimeEntry("job-1", "owner-1", start)
	assert.Equal(t, 90*time.Minute, running.Duration(now))

	closed := running.Stop(start.Add(time.Hour))
	assert.Equal(t, time.Hour, closed.Duration(now))
}

func TestTimeEntry_IsValid(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry TimeEntry
		valid bool
	}{
		{
			name:  "running entry is valid",
			entry: NewTimeEntry("job-1", "owner-1", start),
			valid: true,
		},
		{
			name:  "closed entry with positive duration is valid",
			entry: NewTimeEntry("job-1", "owner-1", start).Stop(start.Add(time.Minute)),
			valid: true,
		},
		{
			name:  "zero duration is invalid",
			entry: NewTimeEntry("job-1", "owner-1", start).Stop(start),
			valid: false,
		},
		{
			name:  "negative duration is invalid",
			entry: NewTimeEntry("job-1", "owner-1", start).Stop(start.Add(-time.Minute)),
			valid: false,
		},
		{
			name:  "missing job is invalid",
			entry: NewTimeEntry("", "owner-1", start),
			valid: false,
		},
		{
			name:  "zero start is invalid",
			entry: NewTimeEntry("job-1", "owner-1", time.Time{}),
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.entry.IsValid())
		})
	}
}

func TestJob_IsValid(t *testing.T) {
	assert.True(t, NewJob("Warehouse shift", "owner-1").IsValid())
	assert.False(t, NewJob("", "owner-1").IsValid())
	assert.False(t, NewJob("   ", "owner-1").IsValid())
	assert.False(t, NewJob("Warehouse shift", "").IsValid())
}
