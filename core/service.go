package core

import "context"

// Service implements every user-facing operation over a Storage backend.
// All task/subtask/stats methods are scoped to an already-resolved username;
// resolving a session token to that username is the transport's job.
type Service struct {
	storage  Storage
	sessions Sessions
	locks    *userLocks
}

func NewService(storage Storage, sessions Sessions) *Service {
	return &Service{
		storage:  storage,
		sessions: sessions,
		locks:    newUserLocks(),
	}
}

func (s *Service) Sessions() Sessions {
	return s.sessions
}

func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}
