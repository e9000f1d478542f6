package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanJob scans a single job from a database row
func scanJob(scanner Scanner) (*jobRow, error) {
	row := &jobRow{}
	err := scanner.Scan(&row.ID, &row.Name, &row.OwnerID, &row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// scanJobs scans multiple jobs from database rows
func scanJobs(rows Rows) ([]*jobRow, error) {
	var jobs []*jobRow
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// scanEntry scans a single time entry from a database row
func scanEntry(scanner Scanner) (*entryRow, error) {
	row := &entryRow{}
	var endTime sql.NullString

	err := scanner.Scan(
		&row.ID,
		&row.JobID,
		&row.OwnerID,
		&row.StartTime,
		&endTime,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		row.EndTime = &endTime.String
	}
	return row, nil
}

// scanEntries scans multiple time entries from database rows
func scanEntries(rows Rows) ([]*entryRow, error) {
	var entries []*entryRow
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
