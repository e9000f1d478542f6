// Package sqlite implements the store on an embedded SQLite database.
// Every mutation pushes a fresh snapshot to the live subscriptions for
// the affected job, which is what gives the collection its realtime
// semantics.
package sqlite

import (
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"

	"jobclock/internal/errors"
	"jobclock/internal/store/sqlite/migrations"
)

// Store implements store.Store on SQLite. All reads and writes are
// scoped to the owner the store was opened for.
type Store struct {
	db      *sql.DB
	ownerID string

	mu        sync.Mutex
	nextSubID int
	entrySubs map[int]*entrySubscription
	jobSubs   map[int]*jobSubscription
}

// New opens (or creates) the database at dbPath, runs migrations, and
// returns a store scoped to ownerID.
func New(dbPath string, ownerID string) (*Store, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("owner id cannot be empty", nil)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStoreError("open database", err)
	}

	// The database/sql pool plus SQLite's single-writer model misbehave
	// with concurrent connections on an in-memory database; one
	// connection is plenty for this workload.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStoreError("run migrations", err)
	}

	return &Store{
		db:        db,
		ownerID:   ownerID,
		entrySubs: make(map[int]*entrySubscription),
		jobSubs:   make(map[int]*jobSubscription),
	}, nil
}

// Close closes all live subscriptions and the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	for id, sub := range s.entrySubs {
		close(sub.ch)
		delete(s.entrySubs, id)
	}
	for id, sub := range s.jobSubs {
		close(sub.ch)
		delete(s.jobSubs, id)
	}
	s.mu.Unlock()

	return s.db.Close()
}
