package core

import "sync"

// userLocks serializes writers per username. The storage contract is a full
// collection rewrite, so two concurrent mutations of the same user's store
// would otherwise lose one of the writes.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (ul *userLocks) lock(username string) func() {
	ul.mu.Lock()
	m, ok := ul.locks[username]
	if !ok {
		m = &sync.Mutex{}
		ul.locks[username] = m
	}
	ul.mu.Unlock()

	m.Lock()
	return m.Unlock
}
