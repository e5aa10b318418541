package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Zachkp/portfolio/internal/feed"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS feed_mounts (
	id           TEXT PRIMARY KEY,
	projects     TEXT NOT NULL,
	using_sample INTEGER NOT NULL DEFAULT 0,
	reason       TEXT NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL
)`

// MountStore keeps settled feed results keyed by mount ID. The default DSN
// is an in-memory database, so nothing outlives the process.
type MountStore struct {
	db     *sql.DB
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

// Open opens the database at dsn and creates the table.
func Open(dsn string, ttl time.Duration, logger *log.Logger) (*MountStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each connection to ":memory:" is its own database; one connection
	// keeps every request on the same table.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create feed_mounts: %w", err)
	}

	return &MountStore{db: db, ttl: ttl, now: time.Now, logger: logger}, nil
}

// Close closes the database.
func (s *MountStore) Close() error {
	return s.db.Close()
}

// Save stores r under id.
func (s *MountStore) Save(ctx context.Context, id string, r feed.Result) error {
	data, err := json.Marshal(r.Projects)
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO feed_mounts (id, projects, using_sample, reason, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, string(data), boolToInt(r.UsingSample), string(r.Reason), s.now().UTC())
	if err != nil {
		return fmt.Errorf("insert mount: %w", err)
	}
	return nil
}

// Load returns the snapshot for id, or feed.ErrMountNotFound when it is
// missing or older than the TTL.
func (s *MountStore) Load(ctx context.Context, id string) (feed.Result, error) {
	var (
		data      string
		sample    int
		reason    string
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT projects, using_sample, reason, created_at
		FROM feed_mounts WHERE id = ?
	`, id).Scan(&data, &sample, &reason, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return feed.Result{}, feed.ErrMountNotFound
	}
	if err != nil {
		return feed.Result{}, fmt.Errorf("query mount: %w", err)
	}

	if s.ttl > 0 && s.now().Sub(createdAt) > s.ttl {
		return feed.Result{}, feed.ErrMountNotFound
	}

	var projects []feed.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		return feed.Result{}, fmt.Errorf("decode projects: %w", err)
	}
	return feed.Result{
		Projects:    projects,
		UsingSample: sample != 0,
		Reason:      feed.Reason(reason),
	}, nil
}

// Cleanup deletes snapshots older than the TTL and returns how many went.
func (s *MountStore) Cleanup(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.ttl).UTC()
	result, err := s.db.ExecContext(ctx, `DELETE FROM feed_mounts WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired mounts: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Sweep runs Cleanup every interval until ctx is done.
func (s *MountStore) Sweep(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Cleanup(ctx)
			if err != nil {
				s.logger.Error("mount cleanup", "err", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("mount cleanup", "removed", n)
			}
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
