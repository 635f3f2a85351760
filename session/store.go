// Package session persists login sessions. The client only ever holds the
// opaque token, carried in a cookie; all session state lives server-side.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the cookie that carries the opaque session token.
const CookieName = "sid"

// ErrNotFound is returned when no live session exists for a token.
var ErrNotFound = errors.New("session not found")

// User is the identity embedded in a session.
type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is a server-side login record. IsAuth true implies User is
// populated.
type Session struct {
	Token     string
	IsAuth    bool
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the session persistence interface. DeleteByEmail backs
// logout-from-all-devices: it removes every session whose embedded user
// email matches, regardless of which device created it.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
