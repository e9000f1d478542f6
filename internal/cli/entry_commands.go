package cli

import (
	"context"
	"fmt"
	"time"

	"jobclock/internal/aggregate"
	"jobclock/internal/errors"
	"jobclock/internal/timefmt"
)

// EntryCommand handles the add and days commands
type EntryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(app *App) *EntryCommand {
	return &EntryCommand{app: app, errorHandler: NewErrorHandler()}
}

// Add records a manual entry: jobclock add <job> <start> <end> [--date D].
// Start and end are times of day in the configured format; an end at or
// before the start rolls into the next day, except an exactly equal pair
// which is rejected as a zero-length entry.
func (c *EntryCommand) Add(ctx context.Context, args []string, dateFlag string) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	baseDate, err := c.parseBaseDate(dateFlag)
	if err != nil {
		return c.errorHandler.Handle("parse date", err)
	}

	entry, err := c.app.api.AddManualEntry(ctx, job.ID, args[1], args[2], baseDate)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	format := c.app.config.TimeFormat()
	minutes := int(entry.End.Sub(entry.Start).Minutes())
	fmt.Fprintf(c.app.out, "Added %s entry to %q (%s to %s)\n",
		timefmt.FormatMinutes(minutes), job.Name,
		timefmt.FormatTimeOfDay(entry.Start, format),
		timefmt.FormatTimeOfDay(*entry.End, format))
	return nil
}

// parseBaseDate resolves the --date flag; empty means today.
func (c *EntryCommand) parseBaseDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := timeNow()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	baseDate, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError(
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", dateFlag), err)
	}
	return baseDate, nil
}

// Days lists the job's entries grouped by calendar day, newest first,
// with per-day totals.
func (c *EntryCommand) Days(ctx context.Context, args []string) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	days, err := c.app.api.DayBuckets(ctx, job.ID)
	if err != nil {
		return c.errorHandler.Handle("list days", err)
	}
	if len(days) == 0 {
		fmt.Fprintf(c.app.out, "No entries for %q yet\n", job.Name)
		return nil
	}

	format := c.app.config.TimeFormat()
	now := timeNow()
	for _, row := range aggregate.BuildRows(days) {
		switch row.Kind {
		case aggregate.RowKindDay:
			date, err := time.ParseInLocation(aggregate.DayKey, row.Day.Date, time.Local)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.app.out, "%s  (%s)\n",
				timefmt.FormatCalendarDate(date, format),
				timefmt.FormatMinutes(aggregate.DayTotalMinutes(*row.Day, now)))
		case aggregate.RowKindEntry:
			end := "running"
			if row.Entry.End != nil {
				end = timefmt.FormatTimeOfDay(*row.Entry.End, format)
			}
			fmt.Fprintf(c.app.out, "  %s - %s\n",
				timefmt.FormatTimeOfDay(row.Entry.Start, format), end)
		}
	}
	return nil
}
