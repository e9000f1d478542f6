// Package validation normalizes user-supplied start/end times into a
// well-formed closed interval before anything is written to the store.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"jobclock/internal/errors"
	"jobclock/internal/timefmt"
)

var (
	pattern24h = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	pattern12h = regexp.MustCompile(`(?i)^(\d{1,2}):([0-5]\d)\s?(AM|PM)$`)
)

// ManualEntryValidator parses and validates free-form start/end time
// input against the active time format.
type ManualEntryValidator struct {
	format timefmt.Format
}

// NewManualEntryValidator creates a validator for the given time format.
func NewManualEntryValidator(format timefmt.Format) *ManualEntryValidator {
	return &ManualEntryValidator{format: format}
}

// ParseTimeOfDay parses a wall-clock string per the active format and
// combines it with the base calendar date, zeroing seconds and below.
func (v *ManualEntryValidator) ParseTimeOfDay(input string, base time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	var hours, minutes int
	switch v.format {
	case timefmt.Format12h:
		match := pattern12h.FindStringSubmatch(input)
		if match == nil {
			return time.Time{}, errors.NewValidationError("invalid time, expected h:MM AM/PM", nil).
				WithContext("input", input)
		}
		hours, _ = strconv.Atoi(match[1])
		minutes, _ = strconv.Atoi(match[2])
		if hours < 1 || hours > 12 {
			return time.Time{}, errors.NewValidationError("invalid time, hour must be 1-12", nil).
				WithContext("input", input)
		}
		meridiem := strings.ToUpper(match[3])
		if meridiem == "PM" && hours < 12 {
			hours += 12
		}
		if meridiem == "AM" && hours == 12 {
			hours = 0
		}
	default:
		match := pattern24h.FindStringSubmatch(input)
		if match == nil {
			return time.Time{}, errors.NewValidationError("invalid time, expected HH:MM", nil).
				WithContext("input", input)
		}
		hours, _ = strconv.Atoi(match[1])
		minutes, _ = strconv.Atoi(match[2])
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hours, minutes, 0, 0, base.Location()), nil
}

// NormalizeInterval parses both inputs against the base date and applies
// the overnight-shift rule: an end strictly before the start is advanced
// by exactly one calendar day (22:00 -> 06:00 spans midnight). An end
// equal to the start is a zero-duration interval and is rejected, never
// stretched into a full day. The final guard rejects any interval that
// still has a non-positive duration; it is the hard backstop behind the
// data-model invariant.
func (v *ManualEntryValidator) NormalizeInterval(startInput, endInput string, base time.Time) (time.Time, time.Time, error) {
	start, err := v.ParseTimeOfDay(startInput, base)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := v.ParseTimeOfDay(endInput, base)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.NewValidationError("end time must be after start time", nil).
			WithContext("start", start).
			WithContext("end", end)
	}

	return start, end, nil
}
