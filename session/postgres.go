package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PostgresStore keeps sessions in the sessions table created by the
// database package.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Create(ctx context.Context, sess Session) error {
	const q = `
INSERT INTO sessions (token, is_auth, user_id, username, email, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := s.db.ExecContext(ctx, q,
		sess.Token, sess.IsAuth, sess.User.UserID, sess.User.Username, sess.User.Email,
		sess.CreatedAt, sess.ExpiresAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, token string) (Session, error) {
	const q = `
SELECT token, is_auth, user_id, username, email, created_at, expires_at
FROM sessions WHERE token = $1`
	var sess Session
	err := s.db.QueryRowContext(ctx, q, token).Scan(
		&sess.Token, &sess.IsAuth, &sess.User.UserID, &sess.User.Username, &sess.User.Email,
		&sess.CreatedAt, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("query session: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		// expired rows are dropped lazily on lookup
		_, _ = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE email = $1`, email)
	if err != nil {
		return 0, fmt.Errorf("delete sessions by email: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
