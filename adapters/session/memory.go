// Package session keeps sessions in process memory. Tokens are opaque
// UUIDs; restarting the server logs everyone out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	username string
	expires  time.Time
}

type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]entry),
	}
}

func (s *Store) Create(username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{username: username, expires: time.Now().Add(s.ttl)}
	return token
}

func (s *Store) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expires) {
		delete(s.sessions, token)
		return "", false
	}
	return e.username, true
}

func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
