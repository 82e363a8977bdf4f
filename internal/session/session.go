package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

const (
	keyUserDetails = "user_details"
	keyAccessToken = "access_token"
)

// Store holds the logged-in identity on the device: a single serialized
// user-details record plus the server-issued access token, replaced wholesale
// on login/update and removed wholesale on logout. Reads are served from
// memory; writes go through sqlite so the session survives restarts.
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	user  *model.UserDetails
	token string
}

// Open opens (creating if needed) the session database at path and loads the
// persisted record into memory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS session (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, keyUserDetails).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("load session: %w", err)
	}

	var user model.UserDetails
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return fmt.Errorf("decode session record: %w", err)
	}

	var token string
	if err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, keyAccessToken).Scan(&token); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load token: %w", err)
	}

	s.user = &user
	s.token = token
	return nil
}

// Current returns the logged-in user, or nil when logged out.
func (s *Store) Current() *model.UserDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// AccessToken implements api.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Replace persists a new session record, overwriting any previous one.
func (s *Store) Replace(ctx context.Context, user model.UserDetails, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session write: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, keyUserDetails, string(raw)); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyAccessToken, token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session write: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear removes the session record, logging the device out.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	return nil
}

// TokenExpiry reads the expiry claim out of the stored access token without
// verifying the signature. Verification is the server's job; the client only
// needs to know whether a request is worth sending.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the stored token has passed its expiry. A token
// with no readable expiry is treated as live and left for the server to
// reject.
func (s *Store) Expired() bool {
	exp, ok := s.TokenExpiry()
	return ok && time.Now().After(exp)
}

func (s *Store) Close() error {
	return s.db.Close()
}
