package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobclock/internal/errors"
	"jobclock/internal/store/sqlite"
	"jobclock/internal/timefmt"
)

func newTestAPI(t *testing.T) (API, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.New(":memory:", "owner-1")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(st, timefmt.Format24h), st
}

func TestStartStopTimer(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)

	entry, err := a.StartTimer(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, entry.IsRunning())

	active, err := a.ActiveEntry(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, entry.ID, active.ID)

	stopped, err := a.StopTimer(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, stopped.IsRunning())
	assert.Equal(t, entry.ID, stopped.ID)

	active, err = a.ActiveEntry(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStartTimer_AlreadyRunning(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)

	_, err = a.StartTimer(ctx, job.ID)
	require.NoError(t, err)

	_, err = a.StartTimer(ctx, job.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePrecondition))
}

func TestStopTimer_NothingRunning(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)

	_, err = a.StopTimer(ctx, job.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePrecondition))

	// The failed stop left no entries behind.
	days, err := a.DayBuckets(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestFindJobByName(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	created, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)

	found, err := a.FindJobByName(ctx, "Warehouse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = a.FindJobByName(ctx, "Nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestAddManualEntry(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	entry, err := a.AddManualEntry(ctx, job.ID, "09:00", "17:30", baseDate)
	require.NoError(t, err)
	require.NotNil(t, entry.End)
	assert.Equal(t, 8*time.Hour+30*time.Minute, entry.End.Sub(entry.Start))
	assert.Equal(t, 1, entry.Start.Day())
}

func TestAddManualEntry_Overnight(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	entry, err := a.AddManualEntry(ctx, job.ID, "22:00", "06:00", baseDate)
	require.NoError(t, err)
	require.NotNil(t, entry.End)
	// End rolled into the next calendar day.
	assert.Equal(t, 8*time.Hour, entry.End.Sub(entry.Start))
	assert.Equal(t, 2, entry.End.Day())
}

func TestAddManualEntry_Rejections(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		start, end string
	}{
		{name: "identical times", start: "09:00", end: "09:00"},
		{name: "malformed start", start: "9am", end: "17:00"},
		{name: "out of range hour", start: "25:00", end: "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.AddManualEntry(ctx, job.ID, tt.start, tt.end, baseDate)

			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		})
	}

	days, err := a.DayBuckets(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestDeleteJob_Cascades(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	_, err = a.AddManualEntry(ctx, job.ID, "09:00", "17:00", baseDate)
	require.NoError(t, err)

	require.NoError(t, a.DeleteJob(ctx, job.ID))

	jobs, err := a.ListJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	days, err := a.DayBuckets(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestDayAndWeekBuckets(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()
	job, err := a.CreateJob(ctx, "Warehouse")
	require.NoError(t, err)

	// Wednesday and Thursday of the same Sunday-aligned week.
	wed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	thu := wed.AddDate(0, 0, 1)
	_, err = a.AddManualEntry(ctx, job.ID, "09:00", "12:00", wed)
	require.NoError(t, err)
	_, err = a.AddManualEntry(ctx, job.ID, "13:00", "17:00", wed)
	require.NoError(t, err)
	_, err = a.AddManualEntry(ctx, job.ID, "09:00", "11:00", thu)
	require.NoError(t, err)

	days, err := a.DayBuckets(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	// Newest day first.
	assert.Equal(t, "2024-05-02", days[0].Date)
	assert.Equal(t, "2024-05-01", days[1].Date)
	assert.Len(t, days[1].Entries, 2)

	weeks, err := a.WeekBuckets(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, "2024-04-28", weeks[0].WeekStart)
}
