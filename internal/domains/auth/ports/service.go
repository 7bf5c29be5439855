package ports

import (
	"context"
	"errors"
)

// ErrInvalidCredentials signals a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore abstracts session/token persistence.
type SessionStore interface {
	Save(ctx context.Context, token, username string) error
	Delete(ctx context.Context, token string) error
}

// NoopSessionStore is a safe default when callers do not need session persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(_ context.Context, _ string, _ string) error { return nil }
func (noopSessionStore) Delete(_ context.Context, _ string) error         { return nil }

// Service exposes the login use cases to adapters.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string)
}
