package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobclock/internal/domain"
	"jobclock/internal/errors"
)

// CreateEntry persists a new time entry. A nil end creates a running
// entry; the insert runs in a transaction that first checks for an
// existing open entry on the job, closing the race the client-side
// derivation alone cannot (the schema's partial unique index is the
// final backstop). A non-nil end must be strictly after start.
func (s *Store) CreateEntry(ctx context.Context, jobID string, start time.Time, end *time.Time) (*domain.TimeEntry, error) {
	entry := domain.TimeEntry{
		ID:        uuid.NewString(),
		JobID:     jobID,
		OwnerID:   s.ownerID,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}
	if !entry.IsValid() {
		return nil, errors.NewValidationError("time entry must have a job and a strictly positive duration", nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleStoreError("begin transaction", err)
	}
	defer tx.Rollback()

	var jobCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM jobs WHERE id = ? AND owner_id = ?`,
		jobID, s.ownerID,
	).Scan(&jobCount); err != nil {
		return nil, HandleStoreError("check job", err)
	}
	if jobCount == 0 {
		return nil, errors.NewNotFoundError("job", jobID)
	}

	if end == nil {
		var running int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM time_entries WHERE job_id = ? AND end_time IS NULL`,
			jobID,
		).Scan(&running); err != nil {
			return nil, HandleStoreError("check running entries", err)
		}
		if running > 0 {
			return nil, errors.NewPreconditionError("a timer is already running for this job").
				WithContext("job_id", jobID)
		}
	}

	query := `
	INSERT INTO time_entries (id, job_id, owner_id, start_time, end_time, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := tx.ExecContext(ctx, query,
		entry.ID, entry.JobID, entry.OwnerID,
		FormatTimeForDB(entry.Start), FormatTimePtrForDB(entry.End), FormatTimeForDB(entry.CreatedAt),
	); err != nil {
		return nil, HandleStoreError("create time entry", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleStoreError("commit time entry", err)
	}

	s.notifyEntries(ctx, jobID)
	return &entry, nil
}

// CloseEntry sets the end time of a running entry. Closing an entry that
// is not running is a precondition error; closing an unknown entry is a
// not found error. A closed entry is never mutated again.
func (s *Store) CloseEntry(ctx context.Context, id string, end time.Time) error {
	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return err
	}
	if !entry.IsRunning() {
		return errors.NewPreconditionError("time entry is already closed").
			WithContext("entry_id", id)
	}
	if !end.After(entry.Start) {
		return errors.NewValidationError("end time must be after start time", nil).
			WithContext("entry_id", id)
	}

	query := `UPDATE time_entries SET end_time = ? WHERE id = ? AND owner_id = ? AND end_time IS NULL`
	if err := execAffectingOne(ctx, s.db, query, "time entry", id, FormatTimeForDB(end), id, s.ownerID); err != nil {
		return err
	}

	s.notifyEntries(ctx, entry.JobID)
	return nil
}

// DeleteEntry deletes a time entry by ID.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return err
	}

	query := `DELETE FROM time_entries WHERE id = ? AND owner_id = ?`
	if err := execAffectingOne(ctx, s.db, query, "time entry", id, id, s.ownerID); err != nil {
		return err
	}

	s.notifyEntries(ctx, entry.JobID)
	return nil
}

// ListEntries retrieves a job's entries ordered by start descending.
func (s *Store) ListEntries(ctx context.Context, jobID string) ([]domain.TimeEntry, error) {
	query := `
	SELECT id, job_id, owner_id, start_time, end_time, created_at
	FROM time_entries
	WHERE job_id = ? AND owner_id = ?
	ORDER BY start_time DESC, id DESC`

	rows, err := queryMultiple(ctx, s.db, query, scanEntries, "time entries", jobID, s.ownerID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, HandleStoreError("parse time entry", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) getEntry(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `
	SELECT id, job_id, owner_id, start_time, end_time, created_at
	FROM time_entries
	WHERE id = ? AND owner_id = ?`

	row, err := querySingle(ctx, s.db, query, scanEntry, "time entry", id, id, s.ownerID)
	if err != nil {
		return nil, err
	}

	entry, err := row.toDomain()
	if err != nil {
		return nil, HandleStoreError("parse time entry", err)
	}
	return &entry, nil
}
