// Package report renders the aggregator's week buckets into a plain
// text timesheet. It ends at correctly grouped, summed, and formatted
// rows; richer document rendering belongs to whoever consumes the text.
package report

import (
	"fmt"
	"strings"
	"time"

	"jobclock/internal/aggregate"
	"jobclock/internal/timefmt"
)

// Timesheet builds a printable report for one job.
type Timesheet struct {
	JobName string
	Weeks   []aggregate.WeekBucket
	Format  timefmt.Format

	// Now anchors running entries and the generation stamp; a zero value
	// means time.Now at render time.
	Now time.Time
}

// Render produces the timesheet text: one section per week, a table per
// day with start/end/duration columns, day totals, and the week total.
func (ts Timesheet) Render() string {
	now := ts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Time Sheet: %s\n", ts.JobName)
	fmt.Fprintf(&b, "Generated on %s\n", timefmt.FormatCalendarDate(now, ts.Format))

	for _, week := range ts.Weeks {
		ts.renderWeek(&b, week, now)
	}
	return b.String()
}

func (ts Timesheet) renderWeek(b *strings.Builder, week aggregate.WeekBucket, now time.Time) {
	weekStart, err := time.ParseInLocation(aggregate.DayKey, week.WeekStart, time.Local)
	if err != nil {
		return
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	fmt.Fprintf(b, "\nWeek of %s - %s\n",
		timefmt.FormatCalendarDate(weekStart, ts.Format),
		timefmt.FormatCalendarDate(weekEnd, ts.Format))

	for _, day := range week.Days {
		ts.renderDay(b, day, now)
	}

	fmt.Fprintf(b, "Week Total: %s\n", timefmt.FormatMinutes(aggregate.WeekTotalMinutes(week, now)))
}

func (ts Timesheet) renderDay(b *strings.Builder, day aggregate.DayBucket, now time.Time) {
	date, err := time.ParseInLocation(aggregate.DayKey, day.Date, time.Local)
	if err != nil {
		return
	}

	fmt.Fprintf(b, "\n  Date: %s\n", timefmt.FormatCalendarDate(date, ts.Format))
	for _, entry := range day.Entries {
		end := "running"
		if entry.End != nil {
			end = timefmt.FormatTimeOfDay(*entry.End, ts.Format)
		}
		minutes := int(entry.Duration(now) / time.Minute)
		if minutes < 0 {
			minutes = 0
		}
		fmt.Fprintf(b, "    %-9s %-9s %s\n",
			timefmt.FormatTimeOfDay(entry.Start, ts.Format), end, timefmt.FormatMinutes(minutes))
	}
	fmt.Fprintf(b, "  Day Total: %s\n", timefmt.FormatMinutes(aggregate.DayTotalMinutes(day, now)))
}
