package sqlite

import (
	"jobclock/internal/domain"
)

// jobRow is the database shape of a job; times travel as RFC3339 strings.
type jobRow struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt string
}

// entryRow is the database shape of a time entry. A nil EndTime column
// marks a running entry.
type entryRow struct {
	ID        string
	JobID     string
	OwnerID   string
	StartTime string
	EndTime   *string
	CreatedAt string
}

// toDomain converts a job row to the domain model.
func (r jobRow) toDomain() (domain.Job, error) {
	createdAt, err := ParseTimeFromDB(r.CreatedAt)
	if err != nil {
		return domain.Job{}, err
	}
	return domain.Job{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		CreatedAt: createdAt,
	}, nil
}

// toDomain converts an entry row to the domain model.
func (r entryRow) toDomain() (domain.TimeEntry, error) {
	start, err := ParseTimeFromDB(r.StartTime)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	createdAt, err := ParseTimeFromDB(r.CreatedAt)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	entry := domain.TimeEntry{
		ID:        r.ID,
		JobID:     r.JobID,
		OwnerID:   r.OwnerID,
		Start:     start,
		CreatedAt: createdAt,
	}
	if r.EndTime != nil {
		end, err := ParseTimeFromDB(*r.EndTime)
		if err != nil {
			return domain.TimeEntry{}, err
		}
		entry.End = &end
	}
	return entry, nil
}
