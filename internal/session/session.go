// Package session stores the authenticated user's profile and session
// token. The two values are written and cleared as a unit; absence of
// either means "not authenticated". This is a local shim, not real
// authentication; there is no token validation beyond presence.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	keyUser  = "user"
	keyToken = "token"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Store struct {
	db *sql.DB
}

// NewStore creates the session table if needed.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("session: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save stores the profile and token together; either both land or
// neither does.
func (s *Store) Save(ctx context.Context, user User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: marshal user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("session: begin: %w", err)
	}
	defer tx.Rollback()

	for _, kv := range []struct{ k, v string }{
		{keyUser, string(data)},
		{keyToken, token},
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			kv.k, kv.v); err != nil {
			return fmt.Errorf("session: save %s: %w", kv.k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("session: commit: %w", err)
	}
	return nil
}

// Current returns the stored profile and token. The bool is false when
// either value is missing or the stored profile fails to parse.
// Corrupted session data never crashes the caller, it just logs out.
func (s *Store) Current(ctx context.Context) (User, string, bool) {
	userJSON, ok := s.get(ctx, keyUser)
	if !ok {
		return User{}, "", false
	}
	token, ok := s.get(ctx, keyToken)
	if !ok || token == "" {
		return User{}, "", false
	}

	var user User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		slog.Warn("session: corrupt user record, treating as signed out", "error", err)
		return User{}, "", false
	}
	return user, token, true
}

// Clear removes both values in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("session: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("session: commit: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		slog.Error("session: read", "key", key, "error", err)
		return "", false
	}
	return value, true
}
