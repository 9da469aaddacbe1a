package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TTL is the fixed session lifetime, matching the cookie lifetime.
const TTL = 24 * time.Hour

// Session represents an authenticated user session. It stores only identity
// pointers; authorization is decided by looking the token up server-side.
type Session struct {
	Token     string    `json:"token"`
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved. Get returns (nil, nil)
// for a token that is absent or expired; implementations must treat the two
// identically.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// New builds a session for the given account with a fresh token and expiry.
func New(accountID uuid.UUID, username string) (Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		AccountID: accountID,
		Username:  username,
		ExpiresAt: time.Now().Add(TTL),
	}, nil
}
