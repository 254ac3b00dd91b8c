package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

// lock key for the shared user collection; no valid username contains '*'
const usersLockKey = "*users*"

// usernames are stored lowercase and may only contain letters, digits, '-', '_'
func isValidUsername(name string) bool {
	if len(name) < minUsernameLen {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// Register creates a user and opens a session for it.
func (s *Service) Register(ctx context.Context, username, password string) (string, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if username == "" || password == "" {
		return "", "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if !isValidUsername(username) {
		return "", "", fmt.Errorf("%w: username must be at least %d characters of letters, digits, '-' or '_'", ErrInvalidInput, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return "", "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	unlock := s.locks.lock(usersLockKey)
	defer unlock()

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return "", "", fmt.Errorf("load users: %w", err)
	}
	if _, taken := users[username]; taken {
		return "", "", fmt.Errorf("%w: username taken", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	users[username] = User{
		Password:  string(hash),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.storage.SaveUsers(ctx, users); err != nil {
		return "", "", fmt.Errorf("save users: %w", err)
	}

	return username, s.sessions.Create(username), nil
}

// Login checks credentials and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (string, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return "", "", fmt.Errorf("load users: %w", err)
	}

	u, ok := users[username]
	if !ok {
		return "", "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", ErrUnauthorized
	}

	return username, s.sessions.Create(username), nil
}

// Logout destroys the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.sessions.Destroy(token)
}

// Whoami resolves a session token to its username.
func (s *Service) Whoami(token string) (string, error) {
	username, ok := s.sessions.Resolve(token)
	if !ok {
		return "", ErrNotAuthenticated
	}
	return username, nil
}
