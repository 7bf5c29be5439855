package memory

import (
	"context"
	"sync"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, token, username string) error {
	s.sessions.Store(token, username)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}
