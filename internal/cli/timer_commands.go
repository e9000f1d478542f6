package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"jobclock/internal/session"
	"jobclock/internal/timefmt"
)

// TimerCommand handles the start, stop, and status commands
type TimerCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(app *App) *TimerCommand {
	return &TimerCommand{app: app, errorHandler: NewErrorHandler()}
}

// Start begins a timer for the named job
func (c *TimerCommand) Start(ctx context.Context, args []string) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	entry, err := c.app.api.StartTimer(ctx, job.ID)
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	format := c.app.config.TimeFormat()
	fmt.Fprintf(c.app.out, "Started timer for %q at %s\n",
		job.Name, timefmt.FormatTimeOfDay(entry.Start, format))
	return nil
}

// Stop closes the running timer for the named job
func (c *TimerCommand) Stop(ctx context.Context, args []string) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	entry, err := c.app.api.StopTimer(ctx, job.ID)
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}

	minutes := int(entry.End.Sub(entry.Start).Minutes())
	fmt.Fprintf(c.app.out, "Stopped timer for %q after %s\n",
		job.Name, timefmt.FormatMinutes(minutes))
	return nil
}

// Status shows whether a timer is running for the named job. With watch
// enabled it stays attached and reprints the elapsed clock every tick
// until the timer stops or the user interrupts.
func (c *TimerCommand) Status(ctx context.Context, args []string, watch bool) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	active, err := c.app.api.ActiveEntry(ctx, job.ID)
	if err != nil {
		return c.errorHandler.Handle("read timer status", err)
	}
	if active == nil {
		fmt.Fprintf(c.app.out, "No timer running for %q\n", job.Name)
		return nil
	}

	format := c.app.config.TimeFormat()
	fmt.Fprintf(c.app.out, "Timer running for %q since %s\n",
		job.Name, timefmt.FormatTimeOfDay(active.Start, format))

	if !watch {
		elapsed := timefmt.ElapsedSeconds(timeNow(), active.Start)
		fmt.Fprintf(c.app.out, "Elapsed: %s\n", timefmt.FormatClock(elapsed))
		return nil
	}
	return c.watch(ctx, job.ID)
}

// watchNotifier ends the watch loop as soon as the timer stops, whether
// it was stopped here or by another process sharing the store.
type watchNotifier struct {
	cancel context.CancelFunc
}

func (n watchNotifier) TimerStarted(jobID, entryID string, startedAt time.Time) {}

func (n watchNotifier) TimerStopped(jobID, entryID string) { n.cancel() }

func (c *TimerCommand) watch(ctx context.Context, jobID string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	onTick := func(elapsedSeconds int) {
		fmt.Fprintf(c.app.out, "\rElapsed: %s", timefmt.FormatClock(elapsedSeconds))
	}
	controller := session.NewController(c.app.store, jobID, onTick,
		session.WithInterval(c.app.config.Session.TickInterval),
		session.WithNotifier(watchNotifier{cancel: cancel}))

	err := controller.Run(ctx)
	fmt.Fprintln(c.app.out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return c.errorHandler.Handle("watch timer", err)
	}
	return nil
}
