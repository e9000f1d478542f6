// Package timefmt holds the pure duration and clock formatting functions.
// All durations are truncated with floor division; no other rounding mode
// is used anywhere in the package.
package timefmt

import (
	"fmt"
	"time"
)

// Format is the user-facing time format setting.
type Format string

const (
	Format24h Format = "24h"
	Format12h Format = "12h"
)

// IsValid reports whether f is a known time format.
func (f Format) IsValid() bool {
	return f == Format24h || f == Format12h
}

// ElapsedSeconds returns the whole seconds elapsed between start and now.
// A start in the future (clock skew, or a server-assigned timestamp that
// has not caught up with the local clock) yields 0, never a negative value.
func ElapsedSeconds(now, start time.Time) int {
	if start.After(now) {
		return 0
	}
	return int(now.Sub(start) / time.Second)
}

// FormatClock renders whole seconds as "HH:MM:SS" with zero padding.
// Hours are unbounded; there is no day rollover.
func FormatClock(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatTimeOfDay renders the wall-clock portion of t. 24h gives "HH:MM";
// 12h gives "h:MM AM/PM" with the 12-hour wraparound (0 renders as 12).
func FormatTimeOfDay(t time.Time, f Format) string {
	hours := t.Hour()
	minutes := t.Minute()

	if f == Format24h {
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}

	h12 := hours % 12
	if h12 == 0 {
		h12 = 12
	}
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h12, minutes, ampm)
}

// FormatCalendarDate renders the date portion of t without zero padding.
// The 24h locale uses "D.M.YYYY"; the 12h locale uses "M/D/YYYY".
func FormatCalendarDate(t time.Time, f Format) string {
	d := t.Day()
	m := int(t.Month())
	y := t.Year()

	if f == Format12h {
		return fmt.Sprintf("%d/%d/%d", m, d, y)
	}
	return fmt.Sprintf("%d.%d.%d", d, m, y)
}

// FormatMinutes renders whole minutes as "Xh Ym" for day and week totals.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
