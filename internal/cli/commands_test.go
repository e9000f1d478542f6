package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobclock/internal/api"
	"jobclock/internal/config"
	"jobclock/internal/store/sqlite"
)

// syncBuffer guards the capture buffer; the watch path writes from the
// controller's tick goroutine while the test writes from its own.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func setupTestApp(t *testing.T) (*App, *syncBuffer) {
	t.Helper()

	st, err := sqlite.New(":memory:", "owner-1")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := config.NewConfig()
	app := NewApp(api.New(st, cfg.TimeFormat()), st, cfg)
	out := &syncBuffer{}
	app.SetOutput(out)
	return app, out
}

func createJobViaCLI(t *testing.T, app *App, name string) {
	t.Helper()
	require.NoError(t, NewJobCommand(app).Add(context.Background(), []string{name}))
}

func TestJobCommand_AddAndList(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	handler := NewJobCommand(app)

	require.NoError(t, handler.Add(ctx, []string{"Warehouse"}))
	assert.Contains(t, out.String(), "Created job: Warehouse")

	out.Reset()
	require.NoError(t, handler.List(ctx, nil))
	assert.Contains(t, out.String(), "Warehouse")
}

func TestJobCommand_ListEmpty(t *testing.T) {
	app, out := setupTestApp(t)

	require.NoError(t, NewJobCommand(app).List(context.Background(), nil))

	assert.Contains(t, out.String(), "No jobs yet")
}

func TestJobCommand_Rename(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewJobCommand(app)

	require.NoError(t, handler.Rename(ctx, []string{"Warehouse", "Night", "Shift"}))
	assert.Contains(t, out.String(), `Renamed job "Warehouse" to "Night Shift"`)

	out.Reset()
	require.NoError(t, handler.List(ctx, nil))
	assert.Contains(t, out.String(), "Night Shift")
	assert.NotContains(t, out.String(), "Warehouse")
}

func TestJobCommand_RemoveUnknownJob(t *testing.T) {
	app, _ := setupTestApp(t)

	err := NewJobCommand(app).Remove(context.Background(), []string{"Nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTimerCommand_StartStop(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewTimerCommand(app)

	require.NoError(t, handler.Start(ctx, []string{"Warehouse"}))
	assert.Contains(t, out.String(), `Started timer for "Warehouse"`)

	out.Reset()
	require.NoError(t, handler.Stop(ctx, []string{"Warehouse"}))
	assert.Contains(t, out.String(), `Stopped timer for "Warehouse"`)
}

func TestTimerCommand_StartTwiceFails(t *testing.T) {
	app, _ := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewTimerCommand(app)

	require.NoError(t, handler.Start(ctx, []string{"Warehouse"}))

	err := handler.Start(ctx, []string{"Warehouse"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestTimerCommand_StopWithoutStartFails(t *testing.T) {
	app, _ := setupTestApp(t)
	createJobViaCLI(t, app, "Warehouse")

	err := NewTimerCommand(app).Stop(context.Background(), []string{"Warehouse"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no timer is running")
}

func TestTimerCommand_Status(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewTimerCommand(app)

	require.NoError(t, handler.Status(ctx, []string{"Warehouse"}, false))
	assert.Contains(t, out.String(), `No timer running for "Warehouse"`)

	require.NoError(t, handler.Start(ctx, []string{"Warehouse"}))
	out.Reset()
	require.NoError(t, handler.Status(ctx, []string{"Warehouse"}, false))
	assert.Contains(t, out.String(), `Timer running for "Warehouse"`)
	assert.Contains(t, out.String(), "Elapsed: ")
}

func TestEntryCommand_Add(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewEntryCommand(app)

	require.NoError(t, handler.Add(ctx, []string{"Warehouse", "09:00", "17:30"}, "2024-05-01"))

	assert.Contains(t, out.String(), `Added 8h 30m entry to "Warehouse"`)
}

func TestEntryCommand_AddOvernight(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewEntryCommand(app)

	require.NoError(t, handler.Add(ctx, []string{"Warehouse", "22:00", "06:00"}, "2024-05-01"))

	assert.Contains(t, out.String(), `Added 8h 0m entry to "Warehouse"`)
}

func TestEntryCommand_AddRejectsZeroLength(t *testing.T) {
	app, _ := setupTestApp(t)
	createJobViaCLI(t, app, "Warehouse")

	err := NewEntryCommand(app).Add(context.Background(),
		[]string{"Warehouse", "09:00", "09:00"}, "2024-05-01")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add entry")
}

func TestEntryCommand_AddRejectsBadDate(t *testing.T) {
	app, _ := setupTestApp(t)
	createJobViaCLI(t, app, "Warehouse")

	err := NewEntryCommand(app).Add(context.Background(),
		[]string{"Warehouse", "09:00", "17:00"}, "01.05.2024")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestEntryCommand_Days(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewEntryCommand(app)
	require.NoError(t, handler.Add(ctx, []string{"Warehouse", "09:00", "12:00"}, "2024-05-01"))
	require.NoError(t, handler.Add(ctx, []string{"Warehouse", "09:00", "11:00"}, "2024-05-02"))
	out.Reset()

	require.NoError(t, handler.Days(ctx, []string{"Warehouse"}))

	output := out.String()
	assert.Contains(t, output, "1.5.2024  (3h 0m)")
	assert.Contains(t, output, "2.5.2024  (2h 0m)")
	// Newest day first.
	assert.Less(t, strings.Index(output, "2.5.2024"), strings.Index(output, "1.5.2024"))
}

func TestEntryCommand_DaysEmpty(t *testing.T) {
	app, out := setupTestApp(t)
	createJobViaCLI(t, app, "Warehouse")

	require.NoError(t, NewEntryCommand(app).Days(context.Background(), []string{"Warehouse"}))

	assert.Contains(t, out.String(), `No entries for "Warehouse" yet`)
}

func TestReportCommand(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	entries := NewEntryCommand(app)
	require.NoError(t, entries.Add(ctx, []string{"Warehouse", "09:00", "12:00"}, "2024-05-01"))
	require.NoError(t, entries.Add(ctx, []string{"Warehouse", "13:00", "17:00"}, "2024-05-01"))
	out.Reset()

	require.NoError(t, NewReportCommand(app).Execute(ctx, []string{"Warehouse"}))

	output := out.String()
	assert.Contains(t, output, "Time Sheet: Warehouse")
	assert.Contains(t, output, "Week of 28.4.2024 - 4.5.2024")
	assert.Contains(t, output, "Day Total: 7h 0m")
	assert.Contains(t, output, "Week Total: 7h 0m")
}

func TestStatusWatch_EndsWhenTimerStops(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	createJobViaCLI(t, app, "Warehouse")
	handler := NewTimerCommand(app)
	app.config.Session.TickInterval = 10 * time.Millisecond

	require.NoError(t, handler.Start(ctx, []string{"Warehouse"}))

	done := make(chan error, 1)
	go func() {
		done <- handler.Status(ctx, []string{"Warehouse"}, true)
	}()

	// Give the watcher time to attach and tick, then stop from "elsewhere".
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, handler.Stop(ctx, []string{"Warehouse"}))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not end after the timer stopped")
	}
	assert.Contains(t, out.String(), "Elapsed: 00:00:0")
}
