package aggregate

import (
	"jobclock/internal/domain"
)

// RowKind tags the two shapes a timesheet list row can take.
type RowKind int

const (
	RowKindDay RowKind = iota
	RowKindEntry
)

// DisplayRow is a tagged union of the two row shapes: a day header or a
// single entry. The list is resolved once when built, so renderers never
// have to infer a row's shape ad hoc.
type DisplayRow struct {
	Kind  RowKind
	Day   *DayBucket
	Entry *domain.TimeEntry
}

// BuildRows flattens day buckets into a display list: each day header row
// followed by that day's entry rows.
func BuildRows(days []DayBucket) []DisplayRow {
	rows := make([]DisplayRow, 0, len(days))
	for i := range days {
		rows = append(rows, DisplayRow{Kind: RowKindDay, Day: &days[i]})
		for j := range days[i].Entries {
			rows = append(rows, DisplayRow{Kind: RowKindEntry, Entry: &days[i].Entries[j]})
		}
	}
	return rows
}
