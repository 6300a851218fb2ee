// Package tracking records privacy-conscious engagement data in SQLite:
// page visits keyed by a salted hash of the client IP, and section events
// (reveals, filter clicks, opened projects). Raw IPs and session ids are
// never stored.
package tracking

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// Event kinds.
const (
	KindReveal = "reveal"
	KindFilter = "filter"
	KindDetail = "detail"
)

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_created_at ON visitors (created_at);

CREATE TABLE IF NOT EXISTS section_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_hash TEXT NOT NULL,
	kind TEXT NOT NULL,
	section TEXT NOT NULL,
	label TEXT NOT NULL DEFAULT '',
	project_id INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS section_events_created_at ON section_events (created_at);
`

// Visit is one tracked page view before hashing.
type Visit struct {
	IP        string
	UserAgent string
	Path      string
}

// Event is one section interaction before hashing.
type Event struct {
	Session   string
	Kind      string
	Section   string
	Label     string
	ProjectID int
}

// Visitor is a stored page view.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is the SQLite-backed tracking store.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSalt fixes the hashing salt. By default a random salt is generated,
// so hashes are stable only for the life of the process.
func WithSalt(salt string) Option {
	return func(s *Store) { s.salt = salt }
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open tracking db %s", path)
	}
	// One connection serializes writers and keeps ":memory:" databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create tracking tables")
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.salt == "" {
		salt, err := randomHex(32)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		s.salt = salt
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Hash returns the salted, truncated SHA-256 of value.
func (s *Store) Hash(value string) string {
	sum := sha256.Sum256([]byte(value + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, created_at)
		VALUES (?, ?, ?, ?)
	`, s.Hash(v.IP), v.UserAgent, v.Path, s.now().Unix())
	return errors.Wrap(err, "record visit")
}

// RecordEvent stores one section event.
func (s *Store) RecordEvent(ctx context.Context, e Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO section_events (session_hash, kind, section, label, project_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.Hash(e.Session), e.Kind, e.Section, e.Label, e.ProjectID, s.now().Unix())
	return errors.Wrap(err, "record section event")
}

// Cleanup deletes rows older than retention and returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()

	var removed int64
	for _, table := range []string{"visitors", "section_events"} {
		res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE created_at < ?", cutoff)
		if err != nil {
			return removed, errors.Wrapf(err, "clean up %s", table)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}

// RecentVisitors returns the latest page views, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query visitors")
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "scan visitor")
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, errors.Wrap(rows.Err(), "iterate visitors")
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}
	return hex.EncodeToString(b), nil
}
