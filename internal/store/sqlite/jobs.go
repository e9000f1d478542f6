package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobclock/internal/domain"
	"jobclock/internal/errors"
)

// CreateJob creates a new job owned by the store's owner.
func (s *Store) CreateJob(ctx context.Context, name string) (*domain.Job, error) {
	job := domain.NewJob(name, s.ownerID)
	if !job.IsValid() {
		return nil, errors.NewValidationError("job name cannot be empty", nil)
	}
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()

	query := `
	INSERT INTO jobs (id, name, owner_id, created_at)
	VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, job.ID, job.Name, job.OwnerID, FormatTimeForDB(job.CreatedAt))
	if err != nil {
		return nil, HandleStoreError("create job", err)
	}

	s.notifyJobs(ctx)
	return &job, nil
}

// GetJob retrieves a job by ID.
func (s *Store) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	query := `
	SELECT id, name, owner_id, created_at
	FROM jobs
	WHERE id = ? AND owner_id = ?`

	row, err := querySingle(ctx, s.db, query, scanJob, "job", id, id, s.ownerID)
	if err != nil {
		return nil, err
	}

	job, err := row.toDomain()
	if err != nil {
		return nil, HandleStoreError("parse job", err)
	}
	return &job, nil
}

// ListJobs retrieves the owner's jobs, newest first.
func (s *Store) ListJobs(ctx context.Context) ([]domain.Job, error) {
	query := `
	SELECT id, name, owner_id, created_at
	FROM jobs
	WHERE owner_id = ?
	ORDER BY created_at DESC, id DESC`

	rows, err := queryMultiple(ctx, s.db, query, scanJobs, "jobs", s.ownerID)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		job, err := row.toDomain()
		if err != nil {
			return nil, HandleStoreError("parse job", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// RenameJob updates a job's name.
func (s *Store) RenameJob(ctx context.Context, id string, name string) error {
	if !domain.NewJob(name, s.ownerID).IsValid() {
		return errors.NewValidationError("job name cannot be empty", nil)
	}

	query := `UPDATE jobs SET name = ? WHERE id = ? AND owner_id = ?`
	if err := execAffectingOne(ctx, s.db, query, "job", id, name, id, s.ownerID); err != nil {
		return err
	}

	s.notifyJobs(ctx)
	return nil
}

// DeleteJobCascade deletes a job together with all of its time entries
// in one transaction. A failure anywhere rolls the whole batch back, so
// the store never holds a job without its entries or orphaned entries
// without their job.
func (s *Store) DeleteJobCascade(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewCascadeError(id, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ? AND owner_id = ?`, id, s.ownerID)
	if err != nil {
		return errors.NewCascadeError(id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewCascadeError(id, err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("job", id)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_entries WHERE job_id = ? AND owner_id = ?`, id, s.ownerID); err != nil {
		return errors.NewCascadeError(id, err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewCascadeError(id, err)
	}

	s.notifyJobs(ctx)
	s.notifyEntries(ctx, id)
	return nil
}
