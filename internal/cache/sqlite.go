package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/recipeadjuster/recipefinder/internal/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	id        TEXT PRIMARY KEY,
	data      TEXT NOT NULL,
	cached_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recipes_cached_at ON recipes(cached_at);

CREATE TABLE IF NOT EXISTS ingredients (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	added_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pending_sync (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	op          TEXT NOT NULL CHECK (op IN ('create','update','delete')),
	entity      TEXT NOT NULL CHECK (entity IN ('recipe','ingredient','preference')),
	payload     TEXT NOT NULL,
	queued_at   INTEGER NOT NULL,
	retry_count INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_pending_sync_queued_at ON pending_sync(queued_at);
`

// Open opens the cache database at path with production-safe pragmas
// (WAL, busy_timeout, foreign_keys) and applies the schema. Parent
// directories are created as needed.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cache: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return db, nil
}

// OpenMemory opens an in-memory cache database for tests. A single
// connection is enforced because each connection to ":memory:" would
// otherwise see its own database.
func OpenMemory(t testing.TB) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("cache.OpenMemory: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// SetClock overrides the store's time source. Tests use it to age
// cached records.
func (s *SQLiteStore) SetClock(now func() time.Time) { s.now = now }

func (s *SQLiteStore) expiryCutoff() int64 {
	return s.now().Add(-ExpiryAge).UnixMilli()
}

func (s *SQLiteStore) CacheRecipe(ctx context.Context, recipe catalog.RecipeDetail) (string, error) {
	data, err := json.Marshal(recipe)
	if err != nil {
		return "", fmt.Errorf("cache recipe: marshal: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("cache recipe: begin: %w", err)
	}
	defer tx.Rollback()

	// Capacity check counts existing records only; an upsert of an
	// already-cached id still passes through it, matching last-write-wins.
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return "", fmt.Errorf("cache recipe: count: %w", err)
	}
	if count >= MaxCachedRecipes {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM recipes WHERE id IN (
				SELECT id FROM recipes ORDER BY cached_at ASC, id ASC LIMIT ?
			)`, EvictCount)
		if err != nil {
			return "", fmt.Errorf("cache recipe: evict: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, data, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, cached_at = excluded.cached_at`,
		recipe.ID, string(data), s.now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("cache recipe: upsert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("cache recipe: commit: %w", err)
	}
	return recipe.ID, nil
}

func (s *SQLiteStore) CachedRecipe(ctx context.Context, id string) (*catalog.RecipeDetail, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM recipes WHERE id = ? AND cached_at >= ?`,
		id, s.expiryCutoff()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("cache: read recipe", "id", id, "error", err)
		return nil, nil
	}

	var recipe catalog.RecipeDetail
	if err := json.Unmarshal([]byte(data), &recipe); err != nil {
		// Corrupted rows count as absent, never as a caller failure.
		slog.Error("cache: corrupt recipe record", "id", id, "error", err)
		return nil, nil
	}
	return &recipe, nil
}

func (s *SQLiteStore) CachedRecipes(ctx context.Context) ([]catalog.RecipeDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM recipes WHERE cached_at >= ?
		ORDER BY cached_at DESC, id DESC LIMIT ?`,
		s.expiryCutoff(), MaxCachedRecipes)
	if err != nil {
		slog.Error("cache: list recipes", "error", err)
		return nil, nil
	}
	defer rows.Close()

	var out []catalog.RecipeDetail
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			slog.Error("cache: scan recipe", "error", err)
			continue
		}
		var recipe catalog.RecipeDetail
		if err := json.Unmarshal([]byte(data), &recipe); err != nil {
			slog.Error("cache: corrupt recipe record", "error", err)
			continue
		}
		out = append(out, recipe)
	}
	if err := rows.Err(); err != nil {
		slog.Error("cache: list recipes", "error", err)
	}
	return out, nil
}

func (s *SQLiteStore) ClearExpiredRecipes(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE cached_at < ?`, s.expiryCutoff())
	if err != nil {
		return 0, fmt.Errorf("clear expired recipes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear expired recipes: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) SaveIngredients(ctx context.Context, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save ingredients: begin: %w", err)
	}
	defer tx.Rollback()

	// Replace semantics: the stored list is always the full current set.
	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients`); err != nil {
		return fmt.Errorf("save ingredients: clear: %w", err)
	}

	addedAt := s.now().UnixMilli()
	for _, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ingredients (name, added_at) VALUES (?, ?)`,
			name, addedAt); err != nil {
			return fmt.Errorf("save ingredients: insert %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save ingredients: commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ingredients(ctx context.Context) ([]string, error) {
	// Rowid order preserves insertion order even when a whole list is
	// saved under one timestamp.
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM ingredients ORDER BY added_at ASC, id ASC`)
	if err != nil {
		slog.Error("cache: read ingredients", "error", err)
		return nil, nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			slog.Error("cache: scan ingredient", "error", err)
			continue
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		slog.Error("cache: read ingredients", "error", err)
	}
	return names, nil
}

func (s *SQLiteStore) SavePreference(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save preference %q: marshal: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Preference(ctx context.Context, key string, out any) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		slog.Error("cache: read preference", "key", key, "error", err)
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		slog.Error("cache: corrupt preference record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) QueuePendingSync(ctx context.Context, op Operation, entity Entity, payload any) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("queue pending sync: marshal: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO pending_sync (op, entity, payload, queued_at, retry_count)
		VALUES (?, ?, ?, ?, 0)`,
		string(op), string(entity), string(data), s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("queue pending sync: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("queue pending sync: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) PendingSync(ctx context.Context) ([]PendingOp, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, op, entity, payload, queued_at, retry_count
		FROM pending_sync ORDER BY queued_at ASC, id ASC`)
	if err != nil {
		slog.Error("cache: read pending sync", "error", err)
		return nil, nil
	}
	defer rows.Close()

	var ops []PendingOp
	for rows.Next() {
		var (
			p        PendingOp
			op       string
			entity   string
			payload  string
			queuedAt int64
		)
		if err := rows.Scan(&p.ID, &op, &entity, &payload, &queuedAt, &p.RetryCount); err != nil {
			slog.Error("cache: scan pending sync", "error", err)
			continue
		}
		p.Op = Operation(op)
		p.Entity = Entity(entity)
		p.Payload = json.RawMessage(payload)
		p.QueuedAt = time.UnixMilli(queuedAt)
		ops = append(ops, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("cache: read pending sync", "error", err)
	}
	return ops, nil
}

func (s *SQLiteStore) ClearPendingSync(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_sync WHERE id = ?`, id); err != nil {
		return fmt.Errorf("clear pending sync %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) IncrementSyncRetry(ctx context.Context, id int64) error {
	// Single UPDATE so concurrent increments on the same record cannot
	// lose a count to a read-then-write race. Absent ids are a no-op.
	if _, err := s.db.ExecContext(ctx,
		`UPDATE pending_sync SET retry_count = retry_count + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("increment sync retry %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear all: begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"recipes", "ingredients", "preferences", "pending_sync"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear all: %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear all: commit: %w", err)
	}
	return nil
}
