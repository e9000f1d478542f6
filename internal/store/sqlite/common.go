package sqlite

import (
	"context"
	"database/sql"

	"jobclock/internal/errors"
)

// HandleStoreError converts database errors to structured app errors
func HandleStoreError(operation string, err error) error {
	return errors.NewStoreError(operation, err)
}

// querySingle executes a query that returns a single row and scans it
func querySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleStoreError("scan "+entityType, err)
	}
	return result, nil
}

// queryMultiple executes a query that returns multiple rows and scans them
func queryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleStoreError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleStoreError("scan "+entityType, err)
	}
	return results, nil
}

// execAffectingOne executes a statement and converts a zero-row result
// into a not found error for the given entity.
func execAffectingOne(ctx context.Context, db *sql.DB, query string, entityType string, id string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleStoreError("execute query", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return HandleStoreError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}
