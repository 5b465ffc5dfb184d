/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "courtwriter/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// CacheDirName stores per-workspace ephemeral data under the project root.
	CacheDirName  = ".ctw"
	CacheFileName = "assets.sqlite"

	// schemaVersion tracks the local SQLite schema of the asset cache.
	// Bump on breaking schema changes.
	schemaVersion = 1

	// DefaultTTL is how long a cached record (or cached miss) stays fresh.
	DefaultTTL = 24 * time.Hour
)

// CachePath returns the full path of the workspace's asset cache database.
func CachePath(root string) string {
	return filepath.Join(root, CacheDirName, CacheFileName)
}

// Cache is a read-through caching resolver backed by an embedded SQLite
// database. Hits are served locally; misses fall through to Source and the
// answer is stored, including negative answers so an unknown id does not
// hammer the catalog on every compile.
type Cache struct {
	Source Resolver
	TTL    time.Duration
	db     *sql.DB
	now    func() time.Time
}

// OpenCache opens (creating if needed) the asset cache under root and wires
// it in front of source.
func OpenCache(root string, source Resolver) (*Cache, error) {
	l := applog.WithOperation(applog.WithComponent("assets"), "cache_open").With(
		slog.String("root", root),
	)
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("workspace root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, CacheDirName), 0o755); err != nil {
		l.Error("create cache dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	uriPath := filepath.ToSlash(CachePath(root))
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", uriPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	l.Info("asset cache ready")
	return &Cache{Source: source, TTL: DefaultTTL, db: db, now: time.Now}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS asset (
  kind       TEXT NOT NULL,
  id         INTEGER NOT NULL,
  found      INTEGER NOT NULL,
  fields     TEXT NOT NULL,
  fetched_at INTEGER NOT NULL,
  PRIMARY KEY (kind, id)
);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		fmt.Sprintf("%d", schemaVersion))
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// Resolve serves from the cache when fresh and falls through to the source
// otherwise. When the source fails and a stale row exists, the stale row is
// served instead of the error, so compiles keep working offline.
func (c *Cache) Resolve(ctx context.Context, kind Kind, id int) (Record, bool, error) {
	rec, exists, fresh, cached, err := c.lookup(ctx, kind, id)
	if err != nil {
		return Record{}, false, err
	}
	if cached && fresh {
		return rec, exists, nil
	}

	srcRec, srcExists, srcErr := c.Source.Resolve(ctx, kind, id)
	if srcErr != nil {
		if cached {
			applog.WithComponent("assets").Warn("catalog unreachable, serving stale record",
				slog.String("kind", string(kind)),
				slog.Int("id", id),
				slog.Any("err", srcErr),
			)
			return rec, exists, nil
		}
		return Record{}, false, srcErr
	}
	if err := c.store(ctx, kind, id, srcRec, srcExists); err != nil {
		// losing the cache write is tolerable; the answer is not
		applog.WithComponent("assets").Warn("cache write failed", slog.Any("err", err))
	}
	return srcRec, srcExists, nil
}

func (c *Cache) lookup(ctx context.Context, kind Kind, id int) (rec Record, exists, fresh, cached bool, err error) {
	var found int
	var fieldsJSON string
	var fetchedAt int64
	row := c.db.QueryRowContext(ctx,
		`SELECT found, fields, fetched_at FROM asset WHERE kind = ? AND id = ?`,
		string(kind), id)
	switch err := row.Scan(&found, &fieldsJSON, &fetchedAt); {
	case errors.Is(err, sql.ErrNoRows):
		return Record{}, false, false, false, nil
	case err != nil:
		return Record{}, false, false, false, fmt.Errorf("cache lookup: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return Record{}, false, false, false, fmt.Errorf("cache row corrupt: %w", err)
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	fresh = c.now().Sub(time.Unix(fetchedAt, 0)) < ttl
	return Record{Kind: kind, ID: id, Fields: fields}, found != 0, fresh, true, nil
}

func (c *Cache) store(ctx context.Context, kind Kind, id int, rec Record, exists bool) error {
	fields := rec.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	found := 0
	if exists {
		found = 1
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO asset(kind, id, found, fields, fetched_at) VALUES(?, ?, ?, ?, ?)
		 ON CONFLICT(kind, id) DO UPDATE SET
		   found = excluded.found, fields = excluded.fields, fetched_at = excluded.fetched_at`,
		string(kind), id, found, string(b), c.now().Unix())
	return err
}
