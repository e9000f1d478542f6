package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobclock/internal/errors"
)

func closedEntry(id string, start time.Time, d time.Duration) TimeEntry {
	end := start.Add(d)
	return TimeEntry{ID: id, JobID: "job-1", OwnerID: "owner-1", Start: start, End: &end}
}

func runningEntry(id string, start time.Time) TimeEntry {
	return TimeEntry{ID: id, JobID: "job-1", OwnerID: "owner-1", Start: start}
}

func TestDeriveActive(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		entries    []TimeEntry
		expectedID string
		anomaly    bool
	}{
		{
			name:    "should return nil for empty set",
			entries: nil,
		},
		{
			name: "should return nil when all entries are closed",
			entries: []TimeEntry{
				closedEntry("a", base, time.Hour),
				closedEntry("b", base.Add(2*time.Hour), time.Hour),
			},
		},
		{
			name: "should return the single running entry",
			entries: []TimeEntry{
				closedEntry("a", base, time.Hour),
				runningEntry("b", base.Add(2*time.Hour)),
			},
			expectedID: "b",
		},
		{
			name: "should flag multiple running entries and pick the most recent",
			entries: []TimeEntry{
				runningEntry("older", base),
				runningEntry("newer", base.Add(time.Hour)),
			},
			expectedID: "newer",
			anomaly:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := DeriveActive(tt.entries)

			if tt.anomaly {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConsistency))
			} else {
				require.NoError(t, err)
			}

			if tt.expectedID == "" {
				assert.Nil(t, active)
			} else {
				require.NotNil(t, active)
				assert.Equal(t, tt.expectedID, active.ID)
			}
		})
	}
}

func TestDeriveActive_IsPureDerivation(t *testing.T) {
	entries := []TimeEntry{
		runningEntry("a", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
	}

	first, err1 := DeriveActive(entries)
	second, err2 := DeriveActive(entries)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first.ID, second.ID)
}
