package core

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

type fakeStorage struct {
	mu       sync.RWMutex
	users    map[string]User
	tasks    map[string][]Task
	subtasks map[string][]Subtask
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:    make(map[string]User),
		tasks:    make(map[string][]Task),
		subtasks: make(map[string][]Subtask),
	}
}

func (f *fakeStorage) Ping(context.Context) error {
	return nil
}

func (f *fakeStorage) LoadUsers(context.Context) (map[string]User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]User, len(f.users))
	for k, v := range f.users {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStorage) SaveUsers(_ context.Context, users map[string]User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users = make(map[string]User, len(users))
	for k, v := range users {
		f.users[k] = v
	}
	return nil
}

func (f *fakeStorage) LoadTasks(_ context.Context, username string) ([]Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Task{}, f.tasks[username]...), nil
}

func (f *fakeStorage) SaveTasks(_ context.Context, username string, tasks []Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[username] = append([]Task{}, tasks...)
	return nil
}

func (f *fakeStorage) LoadSubtasks(_ context.Context, username string) ([]Subtask, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Subtask{}, f.subtasks[username]...), nil
}

func (f *fakeStorage) SaveSubtasks(_ context.Context, username string, subtasks []Subtask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subtasks[username] = append([]Subtask{}, subtasks...)
	return nil
}

// fakeSessions hands out predictable tokens.
type fakeSessions struct {
	mu   sync.Mutex
	n    int
	open map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{open: make(map[string]string)}
}

func (f *fakeSessions) Create(username string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	token := fmt.Sprintf("token-%d-%s", f.n, username)
	f.open[token] = username
	return token
}

func (f *fakeSessions) Resolve(token string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	username, ok := f.open[token]
	return username, ok
}

func (f *fakeSessions) Destroy(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.open, token)
}

func newTestService() *Service {
	return NewService(newFakeStorage(), newFakeSessions())
}

func mustCreateTask(t *testing.T, svc *Service, username, title string) Task {
	t.Helper()

	task, err := svc.CreateTask(context.Background(), username, TaskInput{Title: title})
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return task
}

func mustCreateSubtask(t *testing.T, svc *Service, username string, taskID int64, title string) Subtask {
	t.Helper()

	sub, err := svc.CreateSubtask(context.Background(), username, taskID, title)
	if err != nil {
		t.Fatalf("failed to prepare subtask: %v", err)
	}
	return sub
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
