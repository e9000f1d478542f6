// Package aggregate groups a job's time entries into calendar-day and
// week buckets for the interactive list and the printable report.
// Aggregation is purely derived: every function recomputes from the entry
// set it is given and holds no state of its own.
package aggregate

import (
	"sort"
	"time"

	"jobclock/internal/domain"
)

// DayKey is the local calendar-day key format for bucketing.
const DayKey = "2006-01-02"

// DayBucket holds the entries whose start falls on one local calendar day.
type DayBucket struct {
	Date    string // DayKey-formatted local day of the entries' start times
	Entries []domain.TimeEntry
}

// WeekBucket groups day buckets by their Sunday-aligned local week start.
// It is built only for the report path, not the interactive view.
type WeekBucket struct {
	WeekStart string // DayKey-formatted Sunday beginning the week
	Days      []DayBucket
}

// GroupByDay buckets entries by the local calendar day of their start
// time, most recent day first. Entries with a zero start are skipped;
// they should not occur per the data model but are guarded against.
func GroupByDay(entries []domain.TimeEntry) []DayBucket {
	byDay := make(map[string][]domain.TimeEntry)

	for _, entry := range entries {
		if entry.Start.IsZero() {
			continue
		}
		key := entry.Start.Local().Format(DayKey)
		byDay[key] = append(byDay[key], entry)
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	buckets := make([]DayBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, DayBucket{Date: key, Entries: byDay[key]})
	}
	return buckets
}

// GroupByWeek buckets day buckets by their Sunday-aligned week start,
// most recent week first. Day order inside a week follows the input.
func GroupByWeek(days []DayBucket) []WeekBucket {
	byWeek := make(map[string][]DayBucket)

	for _, day := range days {
		date, err := time.ParseInLocation(DayKey, day.Date, time.Local)
		if err != nil {
			continue
		}
		weekStart := date.AddDate(0, 0, -int(date.Weekday()))
		key := weekStart.Format(DayKey)
		byWeek[key] = append(byWeek[key], day)
	}

	keys := make([]string, 0, len(byWeek))
	for key := range byWeek {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	weeks := make([]WeekBucket, 0, len(keys))
	for _, key := range keys {
		weeks = append(weeks, WeekBucket{WeekStart: key, Days: byWeek[key]})
	}
	return weeks
}

// DayTotalMinutes sums the whole minutes of a day's entries. A running
// entry contributes its duration up to now (a report-time snapshot),
// truncated the same way as every other duration.
func DayTotalMinutes(day DayBucket, now time.Time) int {
	total := 0
	for _, entry := range day.Entries {
		d := entry.Duration(now)
		if d < 0 {
			continue
		}
		total += int(d / time.Minute)
	}
	return total
}

// WeekTotalMinutes sums the day totals of a week bucket.
func WeekTotalMinutes(week WeekBucket, now time.Time) int {
	total := 0
	for _, day := range week.Days {
		total += DayTotalMinutes(day, now)
	}
	return total
}
